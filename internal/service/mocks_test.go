package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// --- Mock User Repository ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) Stats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

// --- Mock Refresh Token Repository ---

type mockRefreshTokenRepository struct {
	mock.Mock
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepository) Replace(ctx context.Context, oldHash string, userID int64, newHash string, expiresAt time.Time) error {
	args := m.Called(ctx, oldHash, userID, newHash, expiresAt)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock Journal Repository ---

type mockJournalRepository struct {
	mock.Mock
}

func (m *mockJournalRepository) Create(ctx context.Context, j *domain.Journal) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *mockJournalRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Journal, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *mockJournalRepository) List(ctx context.Context, userID int64, filter domain.JournalFilter, p pagination.Params) ([]domain.Journal, int64, error) {
	args := m.Called(ctx, userID, filter, p)
	return args.Get(0).([]domain.Journal), args.Get(1).(int64), args.Error(2)
}

func (m *mockJournalRepository) Update(ctx context.Context, j *domain.Journal) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *mockJournalRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// --- Mock Task Repository ---

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskRepository) List(ctx context.Context, userID int64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *mockTaskRepository) Update(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// --- Mock Focus Repository ---

type mockFocusRepository struct {
	mock.Mock
}

func (m *mockFocusRepository) Create(ctx context.Context, s *domain.FocusSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockFocusRepository) List(ctx context.Context, userID int64, p pagination.Params) ([]domain.FocusSession, int64, error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).([]domain.FocusSession), args.Get(1).(int64), args.Error(2)
}

func (m *mockFocusRepository) Stats(ctx context.Context, userID int64, now time.Time) (*domain.FocusStats, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FocusStats), args.Error(1)
}

// --- Mock Workout Repository ---

type mockWorkoutRepository struct {
	mock.Mock
}

func (m *mockWorkoutRepository) CreatePlan(ctx context.Context, p *domain.WorkoutPlan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockWorkoutRepository) GetPlan(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutPlan), args.Error(1)
}

func (m *mockWorkoutRepository) ListPlans(ctx context.Context, userID int64, p pagination.Params) ([]domain.WorkoutPlan, int64, error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).([]domain.WorkoutPlan), args.Get(1).(int64), args.Error(2)
}

func (m *mockWorkoutRepository) UpdatePlan(ctx context.Context, p *domain.WorkoutPlan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockWorkoutRepository) DeletePlan(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockWorkoutRepository) CreateExercise(ctx context.Context, userID int64, e *domain.WorkoutExercise) error {
	args := m.Called(ctx, userID, e)
	return args.Error(0)
}

func (m *mockWorkoutRepository) GetExercise(ctx context.Context, userID, id int64) (*domain.WorkoutExercise, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutExercise), args.Error(1)
}

func (m *mockWorkoutRepository) UpdateExercise(ctx context.Context, userID int64, e *domain.WorkoutExercise) error {
	args := m.Called(ctx, userID, e)
	return args.Error(0)
}

func (m *mockWorkoutRepository) DeleteExercise(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockWorkoutRepository) SetExerciseCompleted(ctx context.Context, userID, id int64, completed bool, notes string) error {
	args := m.Called(ctx, userID, id, completed, notes)
	return args.Error(0)
}

// --- Mock Template Repository ---

type mockTemplateRepository struct {
	mock.Mock
}

func (m *mockTemplateRepository) Create(ctx context.Context, t *domain.WorkoutTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTemplateRepository) GetByID(ctx context.Context, userID, id int64) (*domain.WorkoutTemplate, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutTemplate), args.Error(1)
}

func (m *mockTemplateRepository) ListByUser(ctx context.Context, userID int64, filter domain.TemplateFilter) ([]domain.WorkoutTemplate, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.WorkoutTemplate), args.Error(1)
}

func (m *mockTemplateRepository) AddExercise(ctx context.Context, userID int64, e *domain.TemplateExercise) error {
	args := m.Called(ctx, userID, e)
	return args.Error(0)
}

func (m *mockTemplateRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
