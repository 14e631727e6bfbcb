package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/templates"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

// TemplateService merges the built-in template catalog with user templates
// and instantiates workout plans from either.
type TemplateService struct {
	templates repository.TemplateRepository
	workouts  repository.WorkoutRepository
	stats     *cache.StatsCache
	logger    *slog.Logger
}

// NewTemplateService creates a new template service.
func NewTemplateService(
	tmpl repository.TemplateRepository,
	workouts repository.WorkoutRepository,
	stats *cache.StatsCache,
	logger *slog.Logger,
) *TemplateService {
	return &TemplateService{templates: tmpl, workouts: workouts, stats: stats, logger: logger}
}

// TemplateView is the unified listing shape for built-in and user templates.
// User templates get an "user-<id>" slug so the two id spaces cannot collide.
type TemplateView struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description,omitempty"`
	Equipment      string               `json:"equipment"`
	Goal           string               `json:"goal"`
	Exercises      []templates.Exercise `json:"exercises"`
	IsUserTemplate bool                 `json:"isUserTemplate,omitempty"`
	UserTemplateID int64                `json:"userTemplateId,omitempty"`
}

// CreateTemplateInput holds the parameters for creating a user template.
type CreateTemplateInput struct {
	Name        string
	Description string
	Equipment   string
	Goal        string
	Exercises   []ExerciseInput
}

// FromTemplateInput selects a template to instantiate. Exactly one of
// TemplateID (built-in slug) or UserTemplateID is set; Name optionally
// overrides the plan name.
type FromTemplateInput struct {
	TemplateID     string
	UserTemplateID int64
	Name           string
	Week           int
}

// List returns the user's templates followed by matching built-ins.
func (s *TemplateService) List(ctx context.Context, userID int64, filter domain.TemplateFilter) ([]TemplateView, error) {
	userTemplates, err := s.templates.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	views := []TemplateView{}
	for _, t := range userTemplates {
		views = append(views, userTemplateView(&t))
	}
	for _, t := range templates.Filter(filter.Equipment, filter.Goal) {
		views = append(views, TemplateView{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Equipment:   t.Equipment,
			Goal:        t.Goal,
			Exercises:   t.Exercises,
		})
	}

	return views, nil
}

// Create stores a user template with its exercises.
func (s *TemplateService) Create(ctx context.Context, userID int64, input CreateTemplateInput) (*domain.WorkoutTemplate, error) {
	t := &domain.WorkoutTemplate{
		UserID:      &userID,
		Name:        input.Name,
		Description: input.Description,
		Equipment:   input.Equipment,
		Goal:        input.Goal,
	}
	for _, e := range input.Exercises {
		t.Exercises = append(t.Exercises, domain.TemplateExercise{
			Name:        e.Name,
			Description: e.Description,
			Sets:        e.Sets,
			Reps:        e.Reps,
		})
	}

	if err := s.templates.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "workout template created",
		slog.Int64("user_id", userID),
		slog.Int64("template_id", t.ID),
	)

	return t, nil
}

// AddExercise appends one exercise to a user template.
func (s *TemplateService) AddExercise(ctx context.Context, userID, templateID int64, input ExerciseInput) (*domain.TemplateExercise, error) {
	e := &domain.TemplateExercise{
		TemplateID:  templateID,
		Name:        input.Name,
		Description: input.Description,
		Sets:        input.Sets,
		Reps:        input.Reps,
	}
	if err := s.templates.AddExercise(ctx, userID, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes a user template.
func (s *TemplateService) Delete(ctx context.Context, userID, id int64) error {
	return s.templates.Delete(ctx, userID, id)
}

// InstantiatePlan creates a workout plan from a built-in or user template.
func (s *TemplateService) InstantiatePlan(ctx context.Context, userID int64, input FromTemplateInput) (*domain.WorkoutPlan, error) {
	var view TemplateView
	switch {
	case input.UserTemplateID != 0:
		t, err := s.templates.GetByID(ctx, userID, input.UserTemplateID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NotFound("Workout template")
			}
			return nil, fmt.Errorf("get user template: %w", err)
		}
		view = userTemplateView(t)
	case input.TemplateID != "":
		t := templates.Find(input.TemplateID)
		if t == nil {
			return nil, apperrors.NotFound("Workout template")
		}
		view = TemplateView{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Equipment:   t.Equipment,
			Goal:        t.Goal,
			Exercises:   t.Exercises,
		}
	default:
		return nil, apperrors.InvalidInput("templateId or userTemplateId is required")
	}

	planName := input.Name
	if planName == "" {
		planName = view.Name
	}

	plan := CreatePlanInput{
		Name:        planName,
		Week:        input.Week,
		Description: view.Description,
		Equipment:   view.Equipment,
		Goal:        view.Goal,
	}
	for _, e := range view.Exercises {
		plan.Exercises = append(plan.Exercises, ExerciseInput{
			Name:        e.Name,
			Description: e.Description,
			Sets:        e.Sets,
			Reps:        e.Reps,
		})
	}

	p := &domain.WorkoutPlan{
		UserID:      userID,
		Name:        plan.Name,
		Week:        plan.Week,
		Description: plan.Description,
		Equipment:   plan.Equipment,
		Goal:        plan.Goal,
	}
	for _, e := range plan.Exercises {
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

	s.logger.InfoContext(ctx, "workout plan created from template",
		slog.Int64("user_id", userID),
		slog.String("template_id", view.ID),
		slog.Int64("plan_id", p.ID),
	)

	return p, nil
}

func userTemplateView(t *domain.WorkoutTemplate) TemplateView {
	view := TemplateView{
		ID:             fmt.Sprintf("user-%d", t.ID),
		Name:           t.Name,
		Description:    t.Description,
		Equipment:      t.Equipment,
		Goal:           t.Goal,
		Exercises:      []templates.Exercise{},
		IsUserTemplate: true,
		UserTemplateID: t.ID,
	}
	for _, e := range t.Exercises {
		view.Exercises = append(view.Exercises, templates.Exercise{
			Name:        e.Name,
			Description: e.Description,
			Sets:        e.Sets,
			Reps:        e.Reps,
		})
	}
	return view
}
