package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

func newTaskTestFixture(t *testing.T) (*TaskRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewTaskRepository(mock)
	return repo, mock
}

func taskColumns() []string {
	return []string{
		"id", "user_id", "title", "description", "completed",
		"priority", "due_date", "completed_at", "created_at", "updated_at",
	}
}

func TestTaskRepository_Create(t *testing.T) {
	repo, mock := newTaskTestFixture(t)
	defer mock.Close()

	now := time.Now().UTC()
	due := now.Add(48 * time.Hour)
	task := &domain.Task{UserID: 7, Title: "Ship release", Priority: 2, DueDate: &due}

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(task.UserID, task.Title, task.Description, task.Priority, task.DueDate).
		WillReturnRows(pgxmock.NewRows([]string{"id", "completed", "created_at", "updated_at"}).
			AddRow(int64(21), false, now, now))

	err := repo.Create(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, int64(21), task.ID)
	assert.False(t, task.Completed)
}

func TestTaskRepository_List_StatusAndSearch(t *testing.T) {
	repo, mock := newTaskTestFixture(t)
	defer mock.Close()

	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, user_id, title, description, completed").
		WithArgs(int64(7), "%ship%").
		WillReturnRows(pgxmock.NewRows(taskColumns()).
			AddRow(int64(21), int64(7), "Ship release", "", false, 2, nil, nil, now, now))

	tasks, err := repo.List(context.Background(), 7, domain.TaskFilter{Status: "active", Search: "ship"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Ship release", tasks[0].Title)
	assert.Nil(t, tasks[0].DueDate)
}

func TestTaskRepository_List_UpcomingKeepsCompletedTasks(t *testing.T) {
	repo, mock := newTaskTestFixture(t)
	defer mock.Close()

	now := time.Now().UTC()
	due := now.Add(24 * time.Hour)

	// Upcoming filters on due date alone; a finished task with a future due
	// date still shows up.
	mock.ExpectQuery(`WHERE user_id = \$1 AND due_date IS NOT NULL AND due_date >= NOW\(\)`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(taskColumns()).
			AddRow(int64(22), int64(7), "Renew passport", "", true, 2, &due, &now, now, now))

	tasks, err := repo.List(context.Background(), 7, domain.TaskFilter{Upcoming: true})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
}

func TestTaskRepository_List_Empty(t *testing.T) {
	repo, mock := newTaskTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, user_id, title, description, completed").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(taskColumns()))

	tasks, err := repo.List(context.Background(), 7, domain.TaskFilter{})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTaskTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, user_id, title, description, completed").
		WithArgs(int64(999), int64(7)).
		WillReturnRows(pgxmock.NewRows(taskColumns()))

	_, err := repo.GetByID(context.Background(), 7, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTaskRepository_Update(t *testing.T) {
	repo, mock := newTaskTestFixture(t)
	defer mock.Close()

	completedAt := time.Now().UTC()
	task := &domain.Task{
		ID: 21, UserID: 7, Title: "Ship release", Completed: true,
		Priority: 2, CompletedAt: &completedAt,
	}

	mock.ExpectExec("UPDATE tasks").
		WithArgs(task.Title, task.Description, task.Completed, task.Priority,
			task.DueDate, task.CompletedAt, pgxmock.AnyArg(), task.ID, task.UserID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), task)
	assert.NoError(t, err)
}
