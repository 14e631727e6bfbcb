package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// FocusService implements focus session logging and aggregation.
type FocusService struct {
	sessions repository.FocusRepository
	stats    *cache.StatsCache
	logger   *slog.Logger
	now      func() time.Time
}

// NewFocusService creates a new focus service.
func NewFocusService(sessions repository.FocusRepository, stats *cache.StatsCache, logger *slog.Logger) *FocusService {
	return &FocusService{sessions: sessions, stats: stats, logger: logger, now: time.Now}
}

// LogSessionInput holds the parameters for recording a focus session.
type LogSessionInput struct {
	Duration    int
	Task        string
	Notes       string
	CompletedAt *time.Time
}

// Log records a completed focus session. CompletedAt defaults to now.
func (s *FocusService) Log(ctx context.Context, userID int64, input LogSessionInput) (*domain.FocusSession, error) {
	completedAt := s.now().UTC()
	if input.CompletedAt != nil {
		completedAt = input.CompletedAt.UTC()
	}

	session := &domain.FocusSession{
		UserID:      userID,
		Duration:    input.Duration,
		Task:        input.Task,
		Notes:       input.Notes,
		CompletedAt: completedAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	s.stats.Invalidate(ctx, userID)

	s.logger.InfoContext(ctx, "focus session logged",
		slog.Int64("user_id", userID),
		slog.Int("duration_seconds", input.Duration),
	)

	return session, nil
}

// List returns a page of the user's sessions.
func (s *FocusService) List(ctx context.Context, userID int64, p pagination.Params) (*pagination.Result[domain.FocusSession], error) {
	items, total, err := s.sessions.List(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(items, total, p), nil
}

// Stats returns the user's focus aggregates, cached for a few minutes.
func (s *FocusService) Stats(ctx context.Context, userID int64) (*domain.FocusStats, error) {
	if cached, err := s.stats.GetFocusStats(ctx, userID); err == nil {
		return cached, nil
	}

	agg, err := s.sessions.Stats(ctx, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	s.stats.SetFocusStats(ctx, userID, agg)

	return agg, nil
}
