package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/auth"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/middleware"
)

// AuthService implements registration, login, and the refresh token lifecycle.
type AuthService struct {
	users  repository.UserRepository
	tokens repository.RefreshTokenRepository
	jwt    *auth.Manager
	hasher *auth.Hasher
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	users repository.UserRepository,
	tokens repository.RefreshTokenRepository,
	jwt *auth.Manager,
	hasher *auth.Hasher,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		jwt:    jwt,
		hasher: hasher,
		logger: logger,
	}
}

// RefreshExpiry reports the configured refresh token lifetime. The HTTP layer
// uses it to size the refresh cookie Max-Age.
func (s *AuthService) RefreshExpiry() time.Duration { return s.jwt.RefreshExpiry() }

// RegisterInput holds the parameters for registering a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput holds the parameters for user login.
type LoginInput struct {
	Email    string
	Password string
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        normalizeEmail(input.Email),
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// Login authenticates a user and issues a token pair. Unknown emails and
// wrong passwords produce the identical error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, input.Password) {
		return nil, apperrors.InvalidCredentials()
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return &domain.AuthResult{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Refresh validates a presented refresh token against both the persisted
// record and the token's own signature, then rotates it: the old record is
// replaced by a freshly minted refresh token alongside a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperrors.InvalidRefreshToken("Refresh token required")
	}

	// Checkpoint 1: the persisted record.
	tokenHash := hashToken(refreshToken)
	record, err := s.tokens.GetByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidRefreshToken("Invalid refresh token")
		}
		return nil, fmt.Errorf("lookup refresh token: %w", err)
	}
	if time.Now().UTC().After(record.ExpiresAt) {
		return nil, apperrors.InvalidRefreshToken("Refresh token expired")
	}

	// Checkpoint 2: the token itself.
	claims, err := s.jwt.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, apperrors.InvalidRefreshToken("Invalid refresh token")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidRefreshToken("Invalid refresh token")
		}
		return nil, fmt.Errorf("get user for token refresh: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	newRefresh, err := s.jwt.GenerateRefreshToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	expiresAt, err := s.refreshExpiry(newRefresh)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Replace(ctx, tokenHash, user.ID, hashToken(newRefresh), expiresAt); err != nil {
		return nil, fmt.Errorf("rotate refresh token: %w", err)
	}

	s.logger.InfoContext(ctx, "tokens refreshed", slog.Int64("user_id", user.ID))

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: newRefresh}, nil
}

// Logout deletes the record matching the presented refresh token. A missing
// or already-deleted record is still a successful logout.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.tokens.DeleteByHash(ctx, hashToken(refreshToken)); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

// ChangePassword verifies the current password, stores the new hash, and
// revokes every refresh record so other sessions must log in again.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("User")
		}
		return fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, currentPassword) {
		return apperrors.InvalidCredentials()
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	if err := s.tokens.DeleteByUserID(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to revoke refresh tokens after password change",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "password changed", slog.Int64("user_id", userID))

	return nil
}

// Me returns the current account by fresh lookup.
func (s *AuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// ValidateAccessToken backs the bearer middleware: it verifies the token and
// resolves the account, so tokens for deleted users stop working immediately.
func (s *AuthService) ValidateAccessToken(ctx context.Context, token string) (*middleware.AuthUser, error) {
	claims, err := s.jwt.Verify(token, auth.TokenTypeAccess)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.TokenExpired()
		}
		return nil, apperrors.TokenInvalid()
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.TokenRequired()
		}
		return nil, fmt.Errorf("resolve token user: %w", err)
	}

	return &middleware.AuthUser{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// SweepExpiredTokens deletes refresh records past their expiry.
func (s *AuthService) SweepExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpired(ctx)
}

func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	expiresAt, err := s.refreshExpiry(refreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Create(ctx, user.ID, hashToken(refreshToken), expiresAt); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// refreshExpiry mirrors the token's own exp claim into the stored record so
// the two expiries can never drift.
func (s *AuthService) refreshExpiry(refreshToken string) (time.Time, error) {
	claims, err := s.jwt.Decode(refreshToken)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("decode refresh token expiry: %w", err)
	}
	return claims.ExpiresAt.Time.UTC(), nil
}

// hashToken returns the SHA-256 hex of a token string for storage and lookup.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
