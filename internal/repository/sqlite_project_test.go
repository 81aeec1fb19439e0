package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintcap/internal/domain"
	"sprintcap/internal/testutil"
)

func TestProjectRepo_CreateAndGet_Roundtrip(t *testing.T) {
	conn := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(conn)
	ctx := context.Background()

	proj := testutil.NewTestProject("Website", testutil.WithProjectKey("WEB"))
	require.NoError(t, projects.Create(ctx, proj))

	got, err := projects.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website", got.Name)
	assert.Equal(t, "WEB", got.Key)
	assert.Equal(t, domain.ProjectActive, got.Status)
}

func TestProjectRepo_GetByKey_CaseInsensitive(t *testing.T) {
	conn := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(conn)
	ctx := context.Background()

	proj := testutil.NewTestProject("Website", testutil.WithProjectKey("WEB"))
	require.NoError(t, projects.Create(ctx, proj))

	got, err := projects.GetByKey(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, got.ID)
}

func TestProjectRepo_DuplicateKeyRejected(t *testing.T) {
	conn := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(conn)
	ctx := context.Background()

	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("One", testutil.WithProjectKey("WEB"))))
	err := projects.Create(ctx, testutil.NewTestProject("Two", testutil.WithProjectKey("WEB")))
	require.Error(t, err, "the unique key index must reject duplicates")
}

func TestProjectRepo_List_ExcludesArchivedByDefault(t *testing.T) {
	conn := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(conn)
	ctx := context.Background()

	active := testutil.NewTestProject("Active")
	archived := testutil.NewTestProject("Archived")
	require.NoError(t, projects.Create(ctx, active))
	require.NoError(t, projects.Create(ctx, archived))
	require.NoError(t, projects.Archive(ctx, archived.ID))

	visible, err := projects.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)

	all, err := projects.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProjectRepo_Delete_CascadesToTasks(t *testing.T) {
	conn := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(conn)
	tasks := NewSQLiteTaskRepo(conn)
	ctx := context.Background()

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, projects.Create(ctx, proj))
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask(proj.ID, "Task", testutil.WithDueDate(due))
	require.NoError(t, tasks.Create(ctx, task))

	require.NoError(t, projects.Delete(ctx, proj.ID))

	_, err := tasks.GetByID(ctx, task.ID)
	require.Error(t, err, "tasks cascade with their project")
}
