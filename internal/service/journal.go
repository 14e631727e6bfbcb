package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// JournalService implements journal entry operations.
type JournalService struct {
	journals repository.JournalRepository
	stats    *cache.StatsCache
	logger   *slog.Logger
}

// NewJournalService creates a new journal service.
func NewJournalService(journals repository.JournalRepository, stats *cache.StatsCache, logger *slog.Logger) *JournalService {
	return &JournalService{journals: journals, stats: stats, logger: logger}
}

// CreateJournalInput holds the parameters for creating a journal entry.
type CreateJournalInput struct {
	Title   string
	Content string
}

// UpdateJournalInput holds partial journal updates.
type UpdateJournalInput struct {
	Title   *string
	Content *string
}

// Create adds a journal entry for the user.
func (s *JournalService) Create(ctx context.Context, userID int64, input CreateJournalInput) (*domain.Journal, error) {
	j := &domain.Journal{
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := s.journals.Create(ctx, j); err != nil {
		return nil, err
	}
	s.stats.Invalidate(ctx, userID)

	s.logger.InfoContext(ctx, "journal created",
		slog.Int64("user_id", userID),
		slog.Int64("journal_id", j.ID),
	)

	return j, nil
}

// Get returns one of the user's journal entries.
func (s *JournalService) Get(ctx context.Context, userID, id int64) (*domain.Journal, error) {
	j, err := s.journals.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Journal")
		}
		return nil, fmt.Errorf("get journal: %w", err)
	}
	return j, nil
}

// List returns a page of the user's journal entries.
func (s *JournalService) List(ctx context.Context, userID int64, filter domain.JournalFilter, p pagination.Params) (*pagination.Result[domain.Journal], error) {
	items, total, err := s.journals.List(ctx, userID, filter, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(items, total, p), nil
}

// Update applies partial changes to an entry.
func (s *JournalService) Update(ctx context.Context, userID, id int64, input UpdateJournalInput) (*domain.Journal, error) {
	j, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		j.Title = *input.Title
	}
	if input.Content != nil {
		j.Content = *input.Content
	}

	if err := s.journals.Update(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// Delete removes an entry.
func (s *JournalService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.journals.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.stats.Invalidate(ctx, userID)
	return nil
}
