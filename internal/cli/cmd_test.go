package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintcap/internal/repository"
	"sprintcap/internal/service"
	"sprintcap/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	conn := testutil.NewTestDB(t)

	projRepo := repository.NewSQLiteProjectRepo(conn)
	taskRepo := repository.NewSQLiteTaskRepo(conn)
	sprintRepo := repository.NewSQLiteSprintRepo(conn)
	storyRepo := repository.NewSQLiteStoryRepo(conn)
	uow := testutil.NewTestUoW(conn)

	return &App{
		Projects: service.NewProjectService(projRepo),
		Tasks:    service.NewTaskService(taskRepo, uow),
		Sprints:  service.NewSprintService(sprintRepo, storyRepo, uow),
		Stories:  service.NewStoryService(storyRepo, sprintRepo, uow),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedCLIProject(t *testing.T, app *App) string {
	t.Helper()
	proj := testutil.NewTestProject("CLI Test Project", testutil.WithProjectKey("CLI"))
	require.NoError(t, app.Projects.Create(context.Background(), proj))
	return proj.ID
}

func TestProjectAddCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "project", "add", "--key", "WEB", "--name", "Website")
	require.NoError(t, err)

	projects, err := app.Projects.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "WEB", projects[0].Key)
}

func TestProjectAddCmd_RejectsBadKey(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "project", "add", "--key", "web1", "--name", "Website")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uppercase letters")
}

func TestTaskScheduleCmd_RoundTrip(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	seedCLIProject(t, app)

	_, err := executeCmd(t, app, "task", "add", "--project", "CLI", "--title", "Write docs")
	require.NoError(t, err)

	projects, err := app.Projects.List(ctx, false)
	require.NoError(t, err)
	tasks, err := app.Tasks.ListByProject(ctx, projects[0].ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	day := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	_, err = executeCmd(t, app, "task", "schedule", tasks[0].ID[:8],
		"--project", "CLI", "--day", day, "--hours", "5")
	require.NoError(t, err)

	got, err := app.Tasks.GetByID(ctx, tasks[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	require.NotNil(t, got.EstimatedHours)
	assert.Equal(t, 5.0, *got.EstimatedHours)
}

func TestTaskScheduleCmd_RejectsFullDay(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	projectID := seedCLIProject(t, app)

	day := time.Now().UTC().AddDate(0, 0, 7)
	blocker := testutil.NewTestTask(projectID, "Blocker",
		testutil.WithEstimate(6), testutil.WithDueDate(day))
	require.NoError(t, app.Tasks.Create(ctx, blocker))
	candidate := testutil.NewTestTask(projectID, "Candidate")
	require.NoError(t, app.Tasks.Create(ctx, candidate))

	_, err := executeCmd(t, app, "task", "schedule", candidate.ID[:8],
		"--project", "CLI", "--day", day.Format("2006-01-02"), "--hours", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not scheduled")

	got, err := app.Tasks.GetByID(ctx, candidate.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
}

func TestTaskCheckCmd_InvalidDate(t *testing.T) {
	app := testApp(t)
	seedCLIProject(t, app)

	_, err := executeCmd(t, app, "task", "check",
		"--project", "CLI", "--day", "03/01/2024", "--hours", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestSprintAndStoryFlow(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	projectID := seedCLIProject(t, app)

	start := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	end := time.Now().UTC().AddDate(0, 0, 20).Format("2006-01-02")
	_, err := executeCmd(t, app, "sprint", "add", "--project", "CLI",
		"--name", "Sprint 1", "--start", start, "--end", end)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "story", "add", "--project", "CLI",
		"--title", "Checkout flow", "--points", "8")
	require.NoError(t, err)

	stories, err := app.Stories.ListByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, stories, 1)

	// Sprint resolved by name, story by ID prefix.
	_, err = executeCmd(t, app, "story", "assign", stories[0].ID[:8], "Sprint 1",
		"--project", "CLI")
	require.NoError(t, err)

	got, err := app.Stories.GetByID(ctx, stories[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got.SprintID)

	_, err = executeCmd(t, app, "sprint", "capacity", "Sprint 1", "--project", "CLI")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "board", "--project", "CLI", "--sprint", "Sprint 1")
	require.NoError(t, err)
}

func TestResolveProjectID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	projectID := seedCLIProject(t, app)

	t.Run("by key case-insensitive", func(t *testing.T) {
		id, err := resolveProjectID(ctx, app, "cli")
		require.NoError(t, err)
		assert.Equal(t, projectID, id)
	})

	t.Run("by UUID prefix", func(t *testing.T) {
		id, err := resolveProjectID(ctx, app, projectID[:8])
		require.NoError(t, err)
		assert.Equal(t, projectID, id)
	})

	t.Run("unknown input", func(t *testing.T) {
		_, err := resolveProjectID(ctx, app, "nope")
		assert.Error(t, err)
	})
}
