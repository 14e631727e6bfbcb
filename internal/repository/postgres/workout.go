package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// WorkoutRepository implements repository.WorkoutRepository using PostgreSQL.
type WorkoutRepository struct {
	db DB
}

// NewWorkoutRepository creates a new PostgreSQL-backed workout repository.
func NewWorkoutRepository(db DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// CreatePlan inserts a plan and any nested exercises in one transaction.
func (r *WorkoutRepository) CreatePlan(ctx context.Context, p *domain.WorkoutPlan) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO workout_plans (user_id, name, week, description, equipment, goal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		p.UserID, p.Name, p.Week, p.Description, p.Equipment, p.Goal,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert workout plan: %w", err)
	}

	for i := range p.Exercises {
		e := &p.Exercises[i]
		e.PlanID = p.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO workout_exercises (workout_plan_id, name, description, sets, reps)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, completed, created_at, updated_at`,
			p.ID, e.Name, e.Description, e.Sets, e.Reps,
		).Scan(&e.ID, &e.Completed, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert workout exercise: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetPlan retrieves a plan with its exercises and logs, scoped to its owner.
func (r *WorkoutRepository) GetPlan(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error) {
	query := `
		SELECT id, user_id, name, week, description, equipment, goal, created_at, updated_at
		FROM workout_plans
		WHERE id = $1 AND user_id = $2`

	var p domain.WorkoutPlan
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Week,
		&p.Description,
		&p.Equipment,
		&p.Goal,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan workout plan: %w", err)
	}

	if err := r.attachExercises(ctx, []*domain.WorkoutPlan{&p}); err != nil {
		return nil, err
	}

	return &p, nil
}

// ListPlans returns a page of the user's plans with exercises attached.
func (r *WorkoutRepository) ListPlans(ctx context.Context, userID int64, pg pagination.Params) ([]domain.WorkoutPlan, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout_plans WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count workout plans: %w", err)
	}

	query := `
		SELECT id, user_id, name, week, description, equipment, goal, created_at, updated_at
		FROM workout_plans
		WHERE user_id = $1
		ORDER BY week ASC, created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, pg.Limit, pg.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list workout plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.WorkoutPlan{}
	for rows.Next() {
		var p domain.WorkoutPlan
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Week,
			&p.Description,
			&p.Equipment,
			&p.Goal,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan workout plan row: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate workout plan rows: %w", err)
	}

	refs := make([]*domain.WorkoutPlan, len(plans))
	for i := range plans {
		refs[i] = &plans[i]
	}
	if err := r.attachExercises(ctx, refs); err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

// UpdatePlan modifies a plan's own fields, scoped to its owner.
func (r *WorkoutRepository) UpdatePlan(ctx context.Context, p *domain.WorkoutPlan) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE workout_plans
		SET name = $1, week = $2, description = $3, equipment = $4, goal = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`

	ct, err := r.db.Exec(ctx, query,
		p.Name, p.Week, p.Description, p.Equipment, p.Goal, p.UpdatedAt, p.ID, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("update workout plan: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Workout plan")
	}

	return nil
}

// DeletePlan removes a plan; exercises and logs cascade.
func (r *WorkoutRepository) DeletePlan(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM workout_plans WHERE id = $1 AND user_id = $2`

	ct, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout plan: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Workout plan")
	}

	return nil
}

// CreateExercise inserts an exercise under a plan the user owns.
func (r *WorkoutRepository) CreateExercise(ctx context.Context, userID int64, e *domain.WorkoutExercise) error {
	var planID int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM workout_plans WHERE id = $1 AND user_id = $2`,
		e.PlanID, userID,
	).Scan(&planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Workout plan")
		}
		return fmt.Errorf("check plan ownership: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_exercises (workout_plan_id, name, description, sets, reps)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, completed, created_at, updated_at`,
		e.PlanID, e.Name, e.Description, e.Sets, e.Reps,
	).Scan(&e.ID, &e.Completed, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert workout exercise: %w", err)
	}

	return nil
}

// GetExercise retrieves an exercise whose plan the user owns, logs included.
func (r *WorkoutRepository) GetExercise(ctx context.Context, userID, id int64) (*domain.WorkoutExercise, error) {
	query := `
		SELECT e.id, e.workout_plan_id, e.name, e.description, e.sets, e.reps, e.completed, e.created_at, e.updated_at
		FROM workout_exercises e
		JOIN workout_plans p ON p.id = e.workout_plan_id
		WHERE e.id = $1 AND p.user_id = $2`

	var e domain.WorkoutExercise
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&e.ID,
		&e.PlanID,
		&e.Name,
		&e.Description,
		&e.Sets,
		&e.Reps,
		&e.Completed,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan workout exercise: %w", err)
	}

	logs, err := r.exerciseLogs(ctx, []int64{e.ID})
	if err != nil {
		return nil, err
	}
	e.Logs = logs[e.ID]
	if e.Logs == nil {
		e.Logs = []domain.ExerciseLog{}
	}

	return &e, nil
}

// UpdateExercise modifies an exercise whose plan the user owns.
func (r *WorkoutRepository) UpdateExercise(ctx context.Context, userID int64, e *domain.WorkoutExercise) error {
	e.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE workout_exercises
		SET name = $1, description = $2, sets = $3, reps = $4, updated_at = $5
		WHERE id = $6 AND workout_plan_id IN (SELECT id FROM workout_plans WHERE user_id = $7)`

	ct, err := r.db.Exec(ctx, query, e.Name, e.Description, e.Sets, e.Reps, e.UpdatedAt, e.ID, userID)
	if err != nil {
		return fmt.Errorf("update workout exercise: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Workout exercise")
	}

	return nil
}

// DeleteExercise removes an exercise whose plan the user owns.
func (r *WorkoutRepository) DeleteExercise(ctx context.Context, userID, id int64) error {
	query := `
		DELETE FROM workout_exercises
		WHERE id = $1 AND workout_plan_id IN (SELECT id FROM workout_plans WHERE user_id = $2)`

	ct, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout exercise: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Workout exercise")
	}

	return nil
}

// SetExerciseCompleted flips an exercise's completion flag. Completing
// appends an exercise log row; uncompleting leaves history intact.
func (r *WorkoutRepository) SetExerciseCompleted(ctx context.Context, userID, id int64, completed bool, notes string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ct, err := tx.Exec(ctx, `
		UPDATE workout_exercises
		SET completed = $1, updated_at = $2
		WHERE id = $3 AND workout_plan_id IN (SELECT id FROM workout_plans WHERE user_id = $4)`,
		completed, time.Now().UTC(), id, userID,
	)
	if err != nil {
		return fmt.Errorf("update exercise completion: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Workout exercise")
	}

	if completed {
		_, err = tx.Exec(ctx,
			`INSERT INTO exercise_logs (workout_exercise_id, notes) VALUES ($1, $2)`,
			id, notes,
		)
		if err != nil {
			return fmt.Errorf("insert exercise log: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// attachExercises loads exercises and their logs for the given plans.
func (r *WorkoutRepository) attachExercises(ctx context.Context, plans []*domain.WorkoutPlan) error {
	if len(plans) == 0 {
		return nil
	}

	planIDs := make([]int64, len(plans))
	byPlan := make(map[int64]*domain.WorkoutPlan, len(plans))
	for i, p := range plans {
		planIDs[i] = p.ID
		byPlan[p.ID] = p
		p.Exercises = []domain.WorkoutExercise{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, workout_plan_id, name, description, sets, reps, completed, created_at, updated_at
		FROM workout_exercises
		WHERE workout_plan_id = ANY($1)
		ORDER BY id ASC`, planIDs)
	if err != nil {
		return fmt.Errorf("list workout exercises: %w", err)
	}
	defer rows.Close()

	var exerciseIDs []int64
	for rows.Next() {
		var e domain.WorkoutExercise
		if err := rows.Scan(
			&e.ID,
			&e.PlanID,
			&e.Name,
			&e.Description,
			&e.Sets,
			&e.Reps,
			&e.Completed,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return fmt.Errorf("scan workout exercise row: %w", err)
		}
		e.Logs = []domain.ExerciseLog{}
		exerciseIDs = append(exerciseIDs, e.ID)
		if p, ok := byPlan[e.PlanID]; ok {
			p.Exercises = append(p.Exercises, e)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate workout exercise rows: %w", err)
	}

	if len(exerciseIDs) == 0 {
		return nil
	}

	logs, err := r.exerciseLogs(ctx, exerciseIDs)
	if err != nil {
		return err
	}
	for _, p := range plans {
		for i := range p.Exercises {
			if l, ok := logs[p.Exercises[i].ID]; ok {
				p.Exercises[i].Logs = l
			}
		}
	}

	return nil
}

// exerciseLogs loads completion logs keyed by exercise id.
func (r *WorkoutRepository) exerciseLogs(ctx context.Context, exerciseIDs []int64) (map[int64][]domain.ExerciseLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, workout_exercise_id, completed_at, notes
		FROM exercise_logs
		WHERE workout_exercise_id = ANY($1)
		ORDER BY completed_at DESC`, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("list exercise logs: %w", err)
	}
	defer rows.Close()

	logs := make(map[int64][]domain.ExerciseLog)
	for rows.Next() {
		var l domain.ExerciseLog
		if err := rows.Scan(&l.ID, &l.ExerciseID, &l.CompletedAt, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise log row: %w", err)
		}
		logs[l.ExerciseID] = append(logs[l.ExerciseID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise log rows: %w", err)
	}

	return logs, nil
}
