package domain

import (
	"time"
)

// User represents a registered user.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RefreshToken is a stored refresh token record. TokenHash is the SHA-256
// hex of the token string; the raw token is never persisted.
type RefreshToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenPair holds an access and refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is the login/register response payload.
type AuthResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserStats aggregates a user's activity counts across the app.
type UserStats struct {
	Journals      int64 `json:"journals"`
	Tasks         int64 `json:"tasks"`
	WorkoutPlans  int64 `json:"workoutPlans"`
	FocusSessions int64 `json:"focusSessions"`
}
