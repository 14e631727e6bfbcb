package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
)

func newFocusFixture(t *testing.T) (*FocusService, *mockFocusRepository) {
	t.Helper()
	sessions := new(mockFocusRepository)
	return NewFocusService(sessions, testStatsCache(), testLogger()), sessions
}

func TestFocusService_Log_DefaultsCompletedAt(t *testing.T) {
	svc, sessions := newFocusFixture(t)

	fixed := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.FocusSession) bool {
		return s.CompletedAt.Equal(fixed) && s.Duration == 1500
	})).Return(nil)

	_, err := svc.Log(context.Background(), 7, LogSessionInput{Duration: 1500, Task: "deep work"})
	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestFocusService_Stats_CachesSecondRead(t *testing.T) {
	svc, sessions := newFocusFixture(t)

	stats := &domain.FocusStats{TotalSeconds: 9000, SessionCount: 6, AverageSeconds: 1500}
	sessions.On("Stats", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(stats, nil).Once()

	first, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), first.TotalSeconds)

	// Second read must come from the cache; the repository expectation above
	// allows only one call.
	second, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, first.TotalSeconds, second.TotalSeconds)
	sessions.AssertExpectations(t)
}

func TestFocusService_Log_InvalidatesStatsCache(t *testing.T) {
	svc, sessions := newFocusFixture(t)

	stats := &domain.FocusStats{TotalSeconds: 9000, SessionCount: 6}
	sessions.On("Stats", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(stats, nil).Twice()
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)

	_, err = svc.Log(context.Background(), 7, LogSessionInput{Duration: 300})
	require.NoError(t, err)

	// The write dropped the cached aggregate, forcing a second repository read.
	_, err = svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	sessions.AssertExpectations(t)
}
