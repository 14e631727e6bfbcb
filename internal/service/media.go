package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

// MediaService implements media metadata operations. Files themselves live
// in external storage; this service only tracks their URLs and attachments.
type MediaService struct {
	media    repository.MediaRepository
	tasks    repository.TaskRepository
	journals repository.JournalRepository
	workouts repository.WorkoutRepository
	logger   *slog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(
	media repository.MediaRepository,
	tasks repository.TaskRepository,
	journals repository.JournalRepository,
	workouts repository.WorkoutRepository,
	logger *slog.Logger,
) *MediaService {
	return &MediaService{
		media:    media,
		tasks:    tasks,
		journals: journals,
		workouts: workouts,
		logger:   logger,
	}
}

// CreateMediaInput holds the parameters for registering an upload.
type CreateMediaInput struct {
	URL        string
	PublicID   string
	TaskID     *int64
	JournalID  *int64
	ExerciseID *int64
}

// Create registers an upload, verifying that at most one relation is set and
// that the referenced resource belongs to the user.
func (s *MediaService) Create(ctx context.Context, userID int64, input CreateMediaInput) (*domain.Media, error) {
	relations := 0
	for _, id := range []*int64{input.TaskID, input.JournalID, input.ExerciseID} {
		if id != nil {
			relations++
		}
	}
	if relations > 1 {
		return nil, apperrors.InvalidInput("media can be attached to at most one resource")
	}

	switch {
	case input.TaskID != nil:
		if _, err := s.tasks.GetByID(ctx, userID, *input.TaskID); err != nil {
			return nil, relationError(err, "Task")
		}
	case input.JournalID != nil:
		if _, err := s.journals.GetByID(ctx, userID, *input.JournalID); err != nil {
			return nil, relationError(err, "Journal")
		}
	case input.ExerciseID != nil:
		if _, err := s.workouts.GetExercise(ctx, userID, *input.ExerciseID); err != nil {
			return nil, relationError(err, "Workout exercise")
		}
	}

	m := &domain.Media{
		UserID:     userID,
		URL:        input.URL,
		PublicID:   input.PublicID,
		TaskID:     input.TaskID,
		JournalID:  input.JournalID,
		ExerciseID: input.ExerciseID,
	}
	if err := s.media.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "media registered",
		slog.Int64("user_id", userID),
		slog.Int64("media_id", m.ID),
	)

	return m, nil
}

// Get returns one of the user's media rows.
func (s *MediaService) Get(ctx context.Context, userID, id int64) (*domain.Media, error) {
	m, err := s.media.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Media")
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	return m, nil
}

// List returns all of the user's media rows.
func (s *MediaService) List(ctx context.Context, userID int64) ([]domain.Media, error) {
	return s.media.ListByUser(ctx, userID)
}

// Delete removes a media row.
func (s *MediaService) Delete(ctx context.Context, userID, id int64) error {
	return s.media.Delete(ctx, userID, id)
}

func relationError(err error, resource string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NotFound(resource)
	}
	return fmt.Errorf("check %s ownership: %w", resource, err)
}
