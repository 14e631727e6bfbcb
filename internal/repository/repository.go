// Package repository defines the persistence interfaces consumed by the
// service layer. PostgreSQL implementations live in the postgres subpackage.
package repository

import (
	"context"
	"time"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// UserRepository manages user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, userID int64) (*domain.UserStats, error)
}

// RefreshTokenRepository manages persisted refresh token records.
type RefreshTokenRepository interface {
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	// Replace atomically deletes the old record and inserts the new one.
	Replace(ctx context.Context, oldHash string, userID int64, newHash string, expiresAt time.Time) error
	DeleteByHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// JournalRepository manages journal entries.
type JournalRepository interface {
	Create(ctx context.Context, j *domain.Journal) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Journal, error)
	List(ctx context.Context, userID int64, filter domain.JournalFilter, p pagination.Params) ([]domain.Journal, int64, error)
	Update(ctx context.Context, j *domain.Journal) error
	Delete(ctx context.Context, userID, id int64) error
}

// TaskRepository manages tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Task, error)
	List(ctx context.Context, userID int64, filter domain.TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, userID, id int64) error
}

// WorkoutRepository manages workout plans, their exercises, and exercise logs.
type WorkoutRepository interface {
	CreatePlan(ctx context.Context, p *domain.WorkoutPlan) error
	GetPlan(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID int64, p pagination.Params) ([]domain.WorkoutPlan, int64, error)
	UpdatePlan(ctx context.Context, p *domain.WorkoutPlan) error
	DeletePlan(ctx context.Context, userID, id int64) error

	CreateExercise(ctx context.Context, userID int64, e *domain.WorkoutExercise) error
	GetExercise(ctx context.Context, userID, id int64) (*domain.WorkoutExercise, error)
	UpdateExercise(ctx context.Context, userID int64, e *domain.WorkoutExercise) error
	DeleteExercise(ctx context.Context, userID, id int64) error
	SetExerciseCompleted(ctx context.Context, userID, id int64, completed bool, notes string) error
}

// TemplateRepository manages user-created workout templates. Built-in
// templates live in code, not in this repository.
type TemplateRepository interface {
	Create(ctx context.Context, t *domain.WorkoutTemplate) error
	GetByID(ctx context.Context, userID, id int64) (*domain.WorkoutTemplate, error)
	ListByUser(ctx context.Context, userID int64, filter domain.TemplateFilter) ([]domain.WorkoutTemplate, error)
	AddExercise(ctx context.Context, userID int64, e *domain.TemplateExercise) error
	Delete(ctx context.Context, userID, id int64) error
}

// FocusRepository manages focus session logs.
type FocusRepository interface {
	Create(ctx context.Context, s *domain.FocusSession) error
	List(ctx context.Context, userID int64, p pagination.Params) ([]domain.FocusSession, int64, error)
	Stats(ctx context.Context, userID int64, now time.Time) (*domain.FocusStats, error)
}

// MediaRepository manages uploaded media metadata.
type MediaRepository interface {
	Create(ctx context.Context, m *domain.Media) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Media, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Media, error)
	Delete(ctx context.Context, userID, id int64) error
}
