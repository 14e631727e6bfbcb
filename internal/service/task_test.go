package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

func newTaskFixture(t *testing.T) (*TaskService, *mockTaskRepository) {
	t.Helper()
	tasks := new(mockTaskRepository)
	return NewTaskService(tasks, testStatsCache(), testLogger()), tasks
}

func TestTaskService_Create_DefaultPriority(t *testing.T) {
	svc, tasks := newTaskFixture(t)

	tasks.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Priority == 2 && task.Title == "Write report"
	})).Return(nil)

	_, err := svc.Create(context.Background(), 7, CreateTaskInput{Title: "Write report"})
	require.NoError(t, err)
	tasks.AssertExpectations(t)
}

func TestTaskService_Update_CompletionStampsTimestamp(t *testing.T) {
	svc, tasks := newTaskFixture(t)

	existing := &domain.Task{ID: 21, UserID: 7, Title: "Ship", Priority: 2}
	tasks.On("GetByID", mock.Anything, int64(7), int64(21)).Return(existing, nil)
	tasks.On("Update", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Completed && task.CompletedAt != nil
	})).Return(nil)

	completed := true
	updated, err := svc.Update(context.Background(), 7, 21, UpdateTaskInput{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)
}

func TestTaskService_Update_UncompleteClearsTimestamp(t *testing.T) {
	svc, tasks := newTaskFixture(t)

	now := time.Now().UTC()
	existing := &domain.Task{ID: 21, UserID: 7, Title: "Ship", Priority: 2, Completed: true, CompletedAt: &now}
	tasks.On("GetByID", mock.Anything, int64(7), int64(21)).Return(existing, nil)
	tasks.On("Update", mock.Anything, mock.Anything).Return(nil)

	uncompleted := false
	updated, err := svc.Update(context.Background(), 7, 21, UpdateTaskInput{Completed: &uncompleted})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
}

func TestTaskService_Get_NotFound(t *testing.T) {
	svc, tasks := newTaskFixture(t)

	tasks.On("GetByID", mock.Anything, int64(7), int64(999)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Get(context.Background(), 7, 999)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
}
