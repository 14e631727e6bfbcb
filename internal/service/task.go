package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

// defaultPriority is the middle of the 1 (high) to 3 (low) range.
const defaultPriority = 2

// TaskService implements task operations.
type TaskService struct {
	tasks  repository.TaskRepository
	stats  *cache.StatsCache
	logger *slog.Logger
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository, stats *cache.StatsCache, logger *slog.Logger) *TaskService {
	return &TaskService{tasks: tasks, stats: stats, logger: logger}
}

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    int
	DueDate     *time.Time
}

// UpdateTaskInput holds partial task updates.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *int
	DueDate     *time.Time
}

// Create adds a task for the user.
func (s *TaskService) Create(ctx context.Context, userID int64, input CreateTaskInput) (*domain.Task, error) {
	priority := input.Priority
	if priority == 0 {
		priority = defaultPriority
	}

	t := &domain.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	s.stats.Invalidate(ctx, userID)

	s.logger.InfoContext(ctx, "task created",
		slog.Int64("user_id", userID),
		slog.Int64("task_id", t.ID),
	)

	return t, nil
}

// Get returns one of the user's tasks.
func (s *TaskService) Get(ctx context.Context, userID, id int64) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Task")
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List returns the user's tasks matching the filter.
func (s *TaskService) List(ctx context.Context, userID int64, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.tasks.List(ctx, userID, filter)
}

// Update applies partial changes to a task. Completing a task stamps
// CompletedAt; un-completing clears it.
func (s *TaskService) Update(ctx context.Context, userID, id int64, input UpdateTaskInput) (*domain.Task, error) {
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	if input.Completed != nil && *input.Completed != t.Completed {
		t.Completed = *input.Completed
		if t.Completed {
			now := time.Now().UTC()
			t.CompletedAt = &now
		} else {
			t.CompletedAt = nil
		}
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.tasks.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.stats.Invalidate(ctx, userID)
	return nil
}
