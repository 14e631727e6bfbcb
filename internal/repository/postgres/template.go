package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

// TemplateRepository implements repository.TemplateRepository using PostgreSQL.
type TemplateRepository struct {
	db DB
}

// NewTemplateRepository creates a new PostgreSQL-backed template repository.
func NewTemplateRepository(db DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create inserts a user template with its nested exercises in one transaction.
func (r *TemplateRepository) Create(ctx context.Context, t *domain.WorkoutTemplate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO workout_templates (user_id, name, description, equipment, goal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		t.UserID, t.Name, t.Description, t.Equipment, t.Goal,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert workout template: %w", err)
	}

	for i := range t.Exercises {
		e := &t.Exercises[i]
		e.TemplateID = t.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO workout_template_exercises (template_id, name, description, sets, reps)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			t.ID, e.Name, e.Description, e.Sets, e.Reps,
		).Scan(&e.ID)
		if err != nil {
			return fmt.Errorf("insert template exercise: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a user template with its exercises, scoped to its owner.
func (r *TemplateRepository) GetByID(ctx context.Context, userID, id int64) (*domain.WorkoutTemplate, error) {
	query := `
		SELECT id, user_id, name, description, equipment, goal, created_at
		FROM workout_templates
		WHERE id = $1 AND user_id = $2`

	var t domain.WorkoutTemplate
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID,
		&t.UserID,
		&t.Name,
		&t.Description,
		&t.Equipment,
		&t.Goal,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan workout template: %w", err)
	}

	exercises, err := r.templateExercises(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Exercises = exercises

	return &t, nil
}

// ListByUser returns the user's own templates, optionally filtered.
func (r *TemplateRepository) ListByUser(ctx context.Context, userID int64, filter domain.TemplateFilter) ([]domain.WorkoutTemplate, error) {
	where := `WHERE user_id = $1`
	args := []any{userID}
	if filter.Equipment != "" {
		where += fmt.Sprintf(` AND equipment = $%d`, len(args)+1)
		args = append(args, filter.Equipment)
	}
	if filter.Goal != "" {
		where += fmt.Sprintf(` AND goal = $%d`, len(args)+1)
		args = append(args, filter.Goal)
	}

	query := `
		SELECT id, user_id, name, description, equipment, goal, created_at
		FROM workout_templates
		` + where + `
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workout templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.WorkoutTemplate{}
	for rows.Next() {
		var t domain.WorkoutTemplate
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Name,
			&t.Description,
			&t.Equipment,
			&t.Goal,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan workout template row: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout template rows: %w", err)
	}

	for i := range templates {
		exercises, err := r.templateExercises(ctx, templates[i].ID)
		if err != nil {
			return nil, err
		}
		templates[i].Exercises = exercises
	}

	return templates, nil
}

// AddExercise appends one exercise to a template the user owns.
func (r *TemplateRepository) AddExercise(ctx context.Context, userID int64, e *domain.TemplateExercise) error {
	var templateID int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM workout_templates WHERE id = $1 AND user_id = $2`,
		e.TemplateID, userID,
	).Scan(&templateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Workout template")
		}
		return fmt.Errorf("check template ownership: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_template_exercises (template_id, name, description, sets, reps)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		e.TemplateID, e.Name, e.Description, e.Sets, e.Reps,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert template exercise: %w", err)
	}

	return nil
}

// Delete removes a user template; its exercises cascade.
func (r *TemplateRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM workout_templates WHERE id = $1 AND user_id = $2`

	ct, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout template: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Workout template")
	}

	return nil
}

func (r *TemplateRepository) templateExercises(ctx context.Context, templateID int64) ([]domain.TemplateExercise, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, template_id, name, description, sets, reps
		FROM workout_template_exercises
		WHERE template_id = $1
		ORDER BY id ASC`, templateID)
	if err != nil {
		return nil, fmt.Errorf("list template exercises: %w", err)
	}
	defer rows.Close()

	exercises := []domain.TemplateExercise{}
	for rows.Next() {
		var e domain.TemplateExercise
		if err := rows.Scan(&e.ID, &e.TemplateID, &e.Name, &e.Description, &e.Sets, &e.Reps); err != nil {
			return nil, fmt.Errorf("scan template exercise row: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate template exercise rows: %w", err)
	}

	return exercises, nil
}
