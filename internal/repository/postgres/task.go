package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

// TaskRepository implements repository.TaskRepository using PostgreSQL.
type TaskRepository struct {
	db DB
}

// NewTaskRepository creates a new PostgreSQL-backed task repository.
func NewTaskRepository(db DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task and fills in the generated fields.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `
		INSERT INTO tasks (user_id, title, description, priority, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, completed, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, t.UserID, t.Title, t.Description, t.Priority, t.DueDate).
		Scan(&t.ID, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	return nil
}

// GetByID retrieves a task scoped to its owner.
func (r *TaskRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, completed, priority, due_date, completed_at, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2`

	var t domain.Task
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.Priority,
		&t.DueDate,
		&t.CompletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}

	return &t, nil
}

// List returns the user's tasks, incomplete first, then by due date,
// priority, and recency.
func (r *TaskRepository) List(ctx context.Context, userID int64, filter domain.TaskFilter) ([]domain.Task, error) {
	where := `WHERE user_id = $1`
	args := []any{userID}

	switch filter.Status {
	case "active":
		where += ` AND completed = false`
	case "completed":
		where += ` AND completed = true`
	}
	if filter.Overdue {
		where += ` AND completed = false AND due_date IS NOT NULL AND due_date < NOW()`
	}
	if filter.Upcoming {
		where += ` AND due_date IS NOT NULL AND due_date >= NOW()`
	}
	if filter.Search != "" {
		where += fmt.Sprintf(` AND title ILIKE $%d`, len(args)+1)
		args = append(args, "%"+filter.Search+"%")
	}

	query := `
		SELECT id, user_id, title, description, completed, priority, due_date, completed_at, created_at, updated_at
		FROM tasks
		` + where + `
		ORDER BY completed ASC, due_date ASC NULLS LAST, priority ASC, created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Title,
			&t.Description,
			&t.Completed,
			&t.Priority,
			&t.DueDate,
			&t.CompletedAt,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}

	return tasks, nil
}

// Update modifies a task scoped to its owner.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, priority = $4,
		    due_date = $5, completed_at = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9`

	ct, err := r.db.Exec(ctx, query,
		t.Title,
		t.Description,
		t.Completed,
		t.Priority,
		t.DueDate,
		t.CompletedAt,
		t.UpdatedAt,
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Task")
	}

	return nil
}

// Delete removes a task scoped to its owner.
func (r *TaskRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	ct, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Task")
	}

	return nil
}
