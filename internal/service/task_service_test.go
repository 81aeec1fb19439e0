package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintcap/internal/db"
	"sprintcap/internal/domain"
	"sprintcap/internal/repository"
	"sprintcap/internal/testutil"
)

// helper to set up all repos from a test DB
func setupRepos(t *testing.T) (
	*sql.DB,
	repository.ProjectRepo,
	repository.TaskRepo,
	repository.SprintRepo,
	repository.StoryRepo,
	db.UnitOfWork,
) {
	conn := testutil.NewTestDB(t)
	return conn,
		repository.NewSQLiteProjectRepo(conn),
		repository.NewSQLiteTaskRepo(conn),
		repository.NewSQLiteSprintRepo(conn),
		repository.NewSQLiteStoryRepo(conn),
		testutil.NewTestUoW(conn)
}

func seedProject(t *testing.T, projects repository.ProjectRepo) *domain.Project {
	t.Helper()
	proj := testutil.NewTestProject("Capacity Project")
	require.NoError(t, projects.Create(context.Background(), proj))
	return proj
}

var checkDay = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestTaskService_CheckSchedule_EmptyLedgerAccepts(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	svc := NewTaskService(tasks, uow)

	check, err := svc.CheckSchedule(ctx, proj.ID, "", checkDay, 5)
	require.NoError(t, err)
	assert.True(t, check.Valid)
	assert.Equal(t, 1, check.DaysNeeded)
	assert.Equal(t, 0.0, check.CurrentDayHours)
	require.Len(t, check.Distribution, 1)
	assert.Equal(t, "2024-03-01", check.Distribution[0].Date)
	assert.Equal(t, 5.0, check.Distribution[0].Hours)
}

func TestTaskService_CheckSchedule_RejectsWhenDayNearlyFull(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	existing := testutil.NewTestTask(proj.ID, "Existing",
		testutil.WithEstimate(6), testutil.WithDueDate(checkDay))
	require.NoError(t, tasks.Create(ctx, existing))

	svc := NewTaskService(tasks, uow)

	check, err := svc.CheckSchedule(ctx, proj.ID, "", checkDay, 4)
	require.NoError(t, err)
	assert.False(t, check.Valid)
	assert.Contains(t, check.Reason, "do not fit on the selected day")
	assert.Equal(t, 2, check.DaysNeeded)
	assert.Equal(t, 6.0, check.CurrentDayHours)
	// The spillover breakdown survives for the UI's explanation.
	require.Len(t, check.Distribution, 2)
	assert.Equal(t, 2.0, check.Distribution[0].Hours)
	assert.Equal(t, "2024-03-02", check.Distribution[1].Date)
}

func TestTaskService_CheckSchedule_ExcludesEditedTask(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	// The task being edited already has 6h on the day; without
	// self-exclusion a 6h re-check of the same task would reject itself.
	edited := testutil.NewTestTask(proj.ID, "Edited",
		testutil.WithEstimate(6), testutil.WithDueDate(checkDay))
	require.NoError(t, tasks.Create(ctx, edited))

	svc := NewTaskService(tasks, uow)

	check, err := svc.CheckSchedule(ctx, proj.ID, edited.ID, checkDay, 6)
	require.NoError(t, err)
	assert.True(t, check.Valid, "a task must not collide with its own prior schedule")
}

func TestTaskService_CheckSchedule_LedgerUnavailable(t *testing.T) {
	conn, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	svc := NewTaskService(tasks, uow)
	require.NoError(t, conn.Close())

	_, err := svc.CheckSchedule(ctx, proj.ID, "", checkDay, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
}

func TestTaskService_Schedule_CommitsValidDay(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	task := testutil.NewTestTask(proj.ID, "Schedulable")
	require.NoError(t, tasks.Create(ctx, task))

	svc := NewTaskService(tasks, uow)

	check, err := svc.Schedule(ctx, task.ID, checkDay, 5)
	require.NoError(t, err)
	require.True(t, check.Valid)

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, checkDay, *got.DueDate)
	require.NotNil(t, got.EstimatedHours)
	assert.Equal(t, 5.0, *got.EstimatedHours)
}

func TestTaskService_Schedule_RejectionLeavesTaskUnchanged(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	blocker := testutil.NewTestTask(proj.ID, "Blocker",
		testutil.WithEstimate(6), testutil.WithDueDate(checkDay))
	task := testutil.NewTestTask(proj.ID, "Candidate")
	require.NoError(t, tasks.Create(ctx, blocker))
	require.NoError(t, tasks.Create(ctx, task))

	svc := NewTaskService(tasks, uow)

	check, err := svc.Schedule(ctx, task.ID, checkDay, 4)
	require.NoError(t, err)
	assert.False(t, check.Valid)

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate, "a rejected schedule must not be written")
	assert.Nil(t, got.EstimatedHours)
}

func TestTaskService_Schedule_ClosesCheckThenActRace(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	first := testutil.NewTestTask(proj.ID, "Editor A")
	second := testutil.NewTestTask(proj.ID, "Editor B")
	require.NoError(t, tasks.Create(ctx, first))
	require.NoError(t, tasks.Create(ctx, second))

	svc := NewTaskService(tasks, uow)

	// Both editors validate against the same empty day and both see room.
	checkA, err := svc.CheckSchedule(ctx, proj.ID, first.ID, checkDay, 5)
	require.NoError(t, err)
	checkB, err := svc.CheckSchedule(ctx, proj.ID, second.ID, checkDay, 5)
	require.NoError(t, err)
	assert.True(t, checkA.Valid)
	assert.True(t, checkB.Valid)

	// Commit time tells a different story: the first write lands, the
	// second re-validates against the fresh snapshot and is rejected.
	committed, err := svc.Schedule(ctx, first.ID, checkDay, 5)
	require.NoError(t, err)
	assert.True(t, committed.Valid)

	rejected, err := svc.Schedule(ctx, second.ID, checkDay, 5)
	require.NoError(t, err)
	assert.False(t, rejected.Valid, "stale advisory approval must not carry into the commit")

	got, err := tasks.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
}

func TestTaskService_Update_RevalidatesScheduledEstimate(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	svc := NewTaskService(tasks, uow)

	task := testutil.NewTestTask(proj.ID, "Growing estimate")
	require.NoError(t, tasks.Create(ctx, task))
	check, err := svc.Schedule(ctx, task.ID, checkDay, 5)
	require.NoError(t, err)
	require.True(t, check.Valid)

	// Inflating the estimate past the daily limit must fail the same gate
	// that Schedule runs; the scheduled write path has no side door.
	task, err = tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	big := 100.0
	task.EstimatedHours = &big
	err = svc.Update(ctx, task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update rejected")

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EstimatedHours)
	assert.Equal(t, 5.0, *got.EstimatedHours, "rejected update must not be written")

	ledger, err := tasks.ListScheduled(ctx, proj.ID, "")
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, 5.0, ledger[0].Hours)
}

func TestTaskService_Update_AllowsFittingEstimateChange(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	svc := NewTaskService(tasks, uow)

	neighbor := testutil.NewTestTask(proj.ID, "Neighbor",
		testutil.WithEstimate(3), testutil.WithDueDate(checkDay))
	require.NoError(t, tasks.Create(ctx, neighbor))

	task := testutil.NewTestTask(proj.ID, "Editable")
	require.NoError(t, tasks.Create(ctx, task))
	_, err := svc.Schedule(ctx, task.ID, checkDay, 2)
	require.NoError(t, err)

	// 3 + 5 fills the day exactly; the task's own prior 2h must not count
	// against it.
	task, err = tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	five := 5.0
	task.EstimatedHours = &five
	require.NoError(t, svc.Update(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, *got.EstimatedHours)
}

func TestTaskService_Update_UnscheduledSkipsCapacityCheck(t *testing.T) {
	_, projects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	svc := NewTaskService(tasks, uow)

	task := testutil.NewTestTask(proj.ID, "Unscheduled")
	require.NoError(t, tasks.Create(ctx, task))

	// No due date means no calendar footprint; any estimate is fine.
	big := 100.0
	task.EstimatedHours = &big
	require.NoError(t, svc.Update(ctx, task))
}

func TestTaskService_Schedule_RollsBackOnWriteFailure(t *testing.T) {
	conn, projects, tasks, _, _, _ := setupRepos(t)
	ctx := context.Background()
	proj := seedProject(t, projects)

	task := testutil.NewTestTask(proj.ID, "Unlucky")
	require.NoError(t, tasks.Create(ctx, task))

	failing := &testutil.FailOnNthExecUoW{DB: conn, FailOn: 1, Err: assert.AnError}
	svc := NewTaskService(tasks, failing)

	_, err := svc.Schedule(ctx, task.ID, checkDay, 5)
	require.Error(t, err)

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate, "failed transaction must leave the task unscheduled")
}
