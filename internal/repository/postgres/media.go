package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

// MediaRepository implements repository.MediaRepository using PostgreSQL.
type MediaRepository struct {
	db DB
}

// NewMediaRepository creates a new PostgreSQL-backed media repository.
func NewMediaRepository(db DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create inserts a media metadata row and fills in the generated fields.
func (r *MediaRepository) Create(ctx context.Context, m *domain.Media) error {
	query := `
		INSERT INTO media (user_id, url, public_id, task_id, journal_id, workout_exercise_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, m.UserID, m.URL, m.PublicID, m.TaskID, m.JournalID, m.ExerciseID).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert media: %w", err)
	}

	return nil
}

// GetByID retrieves a media row scoped to its owner.
func (r *MediaRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Media, error) {
	query := `
		SELECT id, user_id, url, public_id, task_id, journal_id, workout_exercise_id, created_at
		FROM media
		WHERE id = $1 AND user_id = $2`

	var m domain.Media
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&m.ID,
		&m.UserID,
		&m.URL,
		&m.PublicID,
		&m.TaskID,
		&m.JournalID,
		&m.ExerciseID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan media: %w", err)
	}

	return &m, nil
}

// ListByUser returns all of the user's media rows, newest first.
func (r *MediaRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Media, error) {
	query := `
		SELECT id, user_id, url, public_id, task_id, journal_id, workout_exercise_id, created_at
		FROM media
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	items := []domain.Media{}
	for rows.Next() {
		var m domain.Media
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.URL,
			&m.PublicID,
			&m.TaskID,
			&m.JournalID,
			&m.ExerciseID,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan media row: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media rows: %w", err)
	}

	return items, nil
}

// Delete removes a media row scoped to its owner.
func (r *MediaRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM media WHERE id = $1 AND user_id = $2`

	ct, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Media")
	}

	return nil
}
