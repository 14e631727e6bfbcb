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

// JournalRepository implements repository.JournalRepository using PostgreSQL.
type JournalRepository struct {
	db DB
}

// NewJournalRepository creates a new PostgreSQL-backed journal repository.
func NewJournalRepository(db DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Create inserts a journal entry and fills in the generated fields.
func (r *JournalRepository) Create(ctx context.Context, j *domain.Journal) error {
	query := `
		INSERT INTO journals (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, j.UserID, j.Title, j.Content).
		Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert journal: %w", err)
	}

	return nil
}

// GetByID retrieves a journal entry scoped to its owner.
func (r *JournalRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Journal, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM journals
		WHERE id = $1 AND user_id = $2`

	var j domain.Journal
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&j.ID,
		&j.UserID,
		&j.Title,
		&j.Content,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan journal: %w", err)
	}

	return &j, nil
}

// List returns a page of the user's journal entries, newest edits first,
// optionally filtered by a title/content search.
func (r *JournalRepository) List(ctx context.Context, userID int64, filter domain.JournalFilter, p pagination.Params) ([]domain.Journal, int64, error) {
	where := `WHERE user_id = $1`
	args := []any{userID}
	if filter.Search != "" {
		where += ` AND (title ILIKE $2 OR content ILIKE $2)`
		args = append(args, "%"+filter.Search+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM journals ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count journals: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, title, content, created_at, updated_at
		FROM journals
		%s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, p.Limit, p.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		var j domain.Journal
		if err := rows.Scan(
			&j.ID,
			&j.UserID,
			&j.Title,
			&j.Content,
			&j.CreatedAt,
			&j.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan journal row: %w", err)
		}
		journals = append(journals, j)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate journal rows: %w", err)
	}

	return journals, total, nil
}

// Update modifies a journal entry scoped to its owner.
func (r *JournalRepository) Update(ctx context.Context, j *domain.Journal) error {
	j.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE journals
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5`

	ct, err := r.db.Exec(ctx, query, j.Title, j.Content, j.UpdatedAt, j.ID, j.UserID)
	if err != nil {
		return fmt.Errorf("update journal: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Journal")
	}

	return nil
}

// Delete removes a journal entry scoped to its owner.
func (r *JournalRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM journals WHERE id = $1 AND user_id = $2`

	ct, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Journal")
	}

	return nil
}
