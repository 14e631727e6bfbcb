package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// FocusRepository implements repository.FocusRepository using PostgreSQL.
type FocusRepository struct {
	db DB
}

// NewFocusRepository creates a new PostgreSQL-backed focus session repository.
func NewFocusRepository(db DB) *FocusRepository {
	return &FocusRepository{db: db}
}

// Create inserts a focus session and fills in the generated fields.
func (r *FocusRepository) Create(ctx context.Context, s *domain.FocusSession) error {
	query := `
		INSERT INTO focus_sessions (user_id, duration, task, notes, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, s.UserID, s.Duration, s.Task, s.Notes, s.CompletedAt).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert focus session: %w", err)
	}

	return nil
}

// List returns a page of the user's sessions, newest first.
func (r *FocusRepository) List(ctx context.Context, userID int64, p pagination.Params) ([]domain.FocusSession, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM focus_sessions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count focus sessions: %w", err)
	}

	query := `
		SELECT id, user_id, duration, task, notes, completed_at, created_at
		FROM focus_sessions
		WHERE user_id = $1
		ORDER BY completed_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list focus sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.FocusSession{}
	for rows.Next() {
		var s domain.FocusSession
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Duration,
			&s.Task,
			&s.Notes,
			&s.CompletedAt,
			&s.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan focus session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate focus session rows: %w", err)
	}

	return sessions, total, nil
}

// Stats aggregates the user's focus history. The day and week windows are
// computed from the caller-supplied clock so tests stay deterministic.
func (r *FocusRepository) Stats(ctx context.Context, userID int64, now time.Time) (*domain.FocusStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)

	query := `
		SELECT
			COALESCE(SUM(duration), 0),
			COALESCE(SUM(duration) FILTER (WHERE completed_at >= $2), 0),
			COALESCE(SUM(duration) FILTER (WHERE completed_at >= $3), 0),
			COUNT(*)
		FROM focus_sessions
		WHERE user_id = $1`

	var s domain.FocusStats
	err := r.db.QueryRow(ctx, query, userID, dayStart, weekStart).
		Scan(&s.TotalSeconds, &s.TodaySeconds, &s.WeekSeconds, &s.SessionCount)
	if err != nil {
		return nil, fmt.Errorf("aggregate focus stats: %w", err)
	}

	if s.SessionCount > 0 {
		s.AverageSeconds = float64(s.TotalSeconds) / float64(s.SessionCount)
	}

	return &s, nil
}
