package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// WorkoutService implements workout plan and exercise operations.
type WorkoutService struct {
	workouts repository.WorkoutRepository
	stats    *cache.StatsCache
	logger   *slog.Logger
}

// NewWorkoutService creates a new workout service.
func NewWorkoutService(workouts repository.WorkoutRepository, stats *cache.StatsCache, logger *slog.Logger) *WorkoutService {
	return &WorkoutService{workouts: workouts, stats: stats, logger: logger}
}

// ExerciseInput describes one exercise in a plan.
type ExerciseInput struct {
	Name        string
	Description string
	Sets        int
	Reps        int
}

// CreatePlanInput holds the parameters for creating a workout plan.
type CreatePlanInput struct {
	Name        string
	Week        int
	Description string
	Equipment   string
	Goal        string
	Exercises   []ExerciseInput
}

// UpdatePlanInput holds partial plan updates.
type UpdatePlanInput struct {
	Name        *string
	Week        *int
	Description *string
	Equipment   *string
	Goal        *string
}

// UpdateExerciseInput holds partial exercise updates.
type UpdateExerciseInput struct {
	Name        *string
	Description *string
	Sets        *int
	Reps        *int
}

// CreatePlan adds a plan, with any nested exercises, for the user.
func (s *WorkoutService) CreatePlan(ctx context.Context, userID int64, input CreatePlanInput) (*domain.WorkoutPlan, error) {
	p := &domain.WorkoutPlan{
		UserID:      userID,
		Name:        input.Name,
		Week:        input.Week,
		Description: input.Description,
		Equipment:   input.Equipment,
		Goal:        input.Goal,
	}
	for _, e := range input.Exercises {
		p.Exercises = append(p.Exercises, domain.WorkoutExercise{
			Name:        e.Name,
			Description: e.Description,
			Sets:        e.Sets,
			Reps:        e.Reps,
		})
	}

	if err := s.workouts.CreatePlan(ctx, p); err != nil {
		return nil, err
	}
	s.stats.Invalidate(ctx, userID)

	s.logger.InfoContext(ctx, "workout plan created",
		slog.Int64("user_id", userID),
		slog.Int64("plan_id", p.ID),
	)

	return p, nil
}

// GetPlan returns one of the user's plans with exercises and logs.
func (s *WorkoutService) GetPlan(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error) {
	p, err := s.workouts.GetPlan(ctx, userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Workout plan")
		}
		return nil, fmt.Errorf("get workout plan: %w", err)
	}
	return p, nil
}

// ListPlans returns a page of the user's plans.
func (s *WorkoutService) ListPlans(ctx context.Context, userID int64, p pagination.Params) (*pagination.Result[domain.WorkoutPlan], error) {
	items, total, err := s.workouts.ListPlans(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(items, total, p), nil
}

// UpdatePlan applies partial changes to a plan.
func (s *WorkoutService) UpdatePlan(ctx context.Context, userID, id int64, input UpdatePlanInput) (*domain.WorkoutPlan, error) {
	p, err := s.GetPlan(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Week != nil {
		p.Week = *input.Week
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Equipment != nil {
		p.Equipment = *input.Equipment
	}
	if input.Goal != nil {
		p.Goal = *input.Goal
	}

	if err := s.workouts.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeletePlan removes a plan and everything under it.
func (s *WorkoutService) DeletePlan(ctx context.Context, userID, id int64) error {
	if err := s.workouts.DeletePlan(ctx, userID, id); err != nil {
		return err
	}
	s.stats.Invalidate(ctx, userID)
	return nil
}

// AddExercise adds an exercise to one of the user's plans.
func (s *WorkoutService) AddExercise(ctx context.Context, userID, planID int64, input ExerciseInput) (*domain.WorkoutExercise, error) {
	e := &domain.WorkoutExercise{
		PlanID:      planID,
		Name:        input.Name,
		Description: input.Description,
		Sets:        input.Sets,
		Reps:        input.Reps,
	}
	if err := s.workouts.CreateExercise(ctx, userID, e); err != nil {
		return nil, err
	}
	e.Logs = []domain.ExerciseLog{}
	return e, nil
}

// GetExercise returns one exercise with its completion logs.
func (s *WorkoutService) GetExercise(ctx context.Context, userID, id int64) (*domain.WorkoutExercise, error) {
	e, err := s.workouts.GetExercise(ctx, userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Workout exercise")
		}
		return nil, fmt.Errorf("get workout exercise: %w", err)
	}
	return e, nil
}

// UpdateExercise applies partial changes to an exercise.
func (s *WorkoutService) UpdateExercise(ctx context.Context, userID, id int64, input UpdateExerciseInput) (*domain.WorkoutExercise, error) {
	e, err := s.GetExercise(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.Sets != nil {
		e.Sets = *input.Sets
	}
	if input.Reps != nil {
		e.Reps = *input.Reps
	}

	if err := s.workouts.UpdateExercise(ctx, userID, e); err != nil {
		return nil, err
	}

	return e, nil
}

// DeleteExercise removes an exercise and its logs.
func (s *WorkoutService) DeleteExercise(ctx context.Context, userID, id int64) error {
	return s.workouts.DeleteExercise(ctx, userID, id)
}

// CompleteExercise marks an exercise done and records a log entry.
func (s *WorkoutService) CompleteExercise(ctx context.Context, userID, id int64, notes string) (*domain.WorkoutExercise, error) {
	if err := s.workouts.SetExerciseCompleted(ctx, userID, id, true, notes); err != nil {
		return nil, err
	}
	return s.GetExercise(ctx, userID, id)
}

// UncompleteExercise unmarks an exercise; past logs stay.
func (s *WorkoutService) UncompleteExercise(ctx context.Context, userID, id int64) (*domain.WorkoutExercise, error) {
	if err := s.workouts.SetExerciseCompleted(ctx, userID, id, false, ""); err != nil {
		return nil, err
	}
	return s.GetExercise(ctx, userID, id)
}
