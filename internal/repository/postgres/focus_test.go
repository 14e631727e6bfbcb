package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
)

func newFocusTestFixture(t *testing.T) (*FocusRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewFocusRepository(mock)
	return repo, mock
}

func TestFocusRepository_Create(t *testing.T) {
	repo, mock := newFocusTestFixture(t)
	defer mock.Close()

	now := time.Now().UTC()
	s := &domain.FocusSession{UserID: 7, Duration: 1500, Task: "deep work", CompletedAt: now}

	mock.ExpectQuery("INSERT INTO focus_sessions").
		WithArgs(s.UserID, s.Duration, s.Task, s.Notes, s.CompletedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(31), now))

	err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, int64(31), s.ID)
}

func TestFocusRepository_Stats(t *testing.T) {
	repo, mock := newFocusTestFixture(t)
	defer mock.Close()

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	weekStart := now.AddDate(0, 0, -7)

	mock.ExpectQuery("SELECT").
		WithArgs(int64(7), dayStart, weekStart).
		WillReturnRows(pgxmock.NewRows([]string{"total", "today", "week", "count"}).
			AddRow(int64(9000), int64(1500), int64(4500), int64(6)))

	stats, err := repo.Stats(context.Background(), 7, now)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), stats.TotalSeconds)
	assert.Equal(t, int64(1500), stats.TodaySeconds)
	assert.Equal(t, int64(4500), stats.WeekSeconds)
	assert.Equal(t, int64(6), stats.SessionCount)
	assert.InDelta(t, 1500.0, stats.AverageSeconds, 0.001)
}

func TestFocusRepository_Stats_NoSessions(t *testing.T) {
	repo, mock := newFocusTestFixture(t)
	defer mock.Close()

	now := time.Now().UTC()

	mock.ExpectQuery("SELECT").
		WithArgs(int64(7), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"total", "today", "week", "count"}).
			AddRow(int64(0), int64(0), int64(0), int64(0)))

	stats, err := repo.Stats(context.Background(), 7, now)
	require.NoError(t, err)
	assert.Zero(t, stats.AverageSeconds)
}
