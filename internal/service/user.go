package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

// UserService implements profile and stats operations.
type UserService struct {
	users  repository.UserRepository
	stats  *cache.StatsCache
	logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, stats *cache.StatsCache, logger *slog.Logger) *UserService {
	return &UserService{users: users, stats: stats, logger: logger}
}

// UpdateProfileInput holds the parameters for updating a profile. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

// Profile returns the current user's account.
func (s *UserService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies partial profile changes.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "profile updated", slog.Int64("user_id", userID))

	return user, nil
}

// DeleteAccount removes the user; all owned rows cascade away.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.stats.Invalidate(ctx, userID)

	s.logger.InfoContext(ctx, "account deleted", slog.Int64("user_id", userID))

	return nil
}

// Stats returns the user's activity counts, served from the cache when warm.
func (s *UserService) Stats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	if cached, err := s.stats.GetUserStats(ctx, userID); err == nil {
		return cached, nil
	}

	stats, err := s.users.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.stats.SetUserStats(ctx, userID, stats)

	return stats, nil
}
