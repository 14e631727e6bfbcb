package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
)

func newUserTestFixture(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewUserRepository(mock)
	return repo, mock
}

func sampleUser() *domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.User{
		ID:           7,
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "hash-abc",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func userColumns() []string {
	return []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns()).AddRow(
		u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
}

func TestUserRepository_Create_Success(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	u := sampleUser()
	u.ID = 0
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(u.Email, u.Name, u.PasswordHash).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, int64(42), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	u := sampleUser()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(u.Email, u.Name, u.PasswordHash).
		WillReturnError(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), u)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ALREADY_EXISTS", appErr.Code)
}

func TestUserRepository_GetByEmail_Success(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	u := sampleUser()

	mock.ExpectQuery("SELECT id, email, name, password_hash, created_at, updated_at").
		WithArgs(u.Email).
		WillReturnRows(userRow(u))

	got, err := repo.GetByEmail(context.Background(), u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, email, name, password_hash, created_at, updated_at").
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows(userColumns()))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	u := sampleUser()

	mock.ExpectExec("UPDATE users").
		WithArgs(u.Email, u.Name, pgxmock.AnyArg(), u.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), u)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_Delete_Success(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Stats(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"journals", "tasks", "plans", "focus"}).
			AddRow(int64(3), int64(5), int64(1), int64(12)))

	stats, err := repo.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Journals)
	assert.Equal(t, int64(5), stats.Tasks)
	assert.Equal(t, int64(1), stats.WorkoutPlans)
	assert.Equal(t, int64(12), stats.FocusSessions)
}

// ---------------------------------------------------------------------------
// RefreshTokenRepository
// ---------------------------------------------------------------------------

func newRefreshTestFixture(t *testing.T) (*RefreshTokenRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewRefreshTokenRepository(mock)
	return repo, mock
}

func TestRefreshTokenRepository_CreateAndGet(t *testing.T) {
	repo, mock := newRefreshTestFixture(t)
	defer mock.Close()

	expiresAt := time.Now().UTC().Add(720 * time.Hour)

	mock.ExpectExec("INSERT INTO refresh_tokens").
		WithArgs(int64(7), "hash-xyz", expiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), 7, "hash-xyz", expiresAt)
	require.NoError(t, err)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, user_id, token_hash, expires_at, created_at").
		WithArgs("hash-xyz").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}).
			AddRow(int64(1), int64(7), "hash-xyz", expiresAt, now))

	rt, err := repo.GetByHash(context.Background(), "hash-xyz")
	require.NoError(t, err)
	assert.Equal(t, int64(7), rt.UserID)
	assert.Equal(t, "hash-xyz", rt.TokenHash)
}

func TestRefreshTokenRepository_GetByHash_NotFound(t *testing.T) {
	repo, mock := newRefreshTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, user_id, token_hash, expires_at, created_at").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}))

	_, err := repo.GetByHash(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRefreshTokenRepository_Replace(t *testing.T) {
	repo, mock := newRefreshTestFixture(t)
	defer mock.Close()

	expiresAt := time.Now().UTC().Add(720 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM refresh_tokens").
		WithArgs("old-hash").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("INSERT INTO refresh_tokens").
		WithArgs(int64(7), "new-hash", expiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.Replace(context.Background(), "old-hash", 7, "new-hash", expiresAt)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_DeleteByHash_MissingIsSuccess(t *testing.T) {
	repo, mock := newRefreshTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM refresh_tokens").
		WithArgs("gone").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteByHash(context.Background(), "gone")
	assert.NoError(t, err)
}

func TestRefreshTokenRepository_DeleteExpired(t *testing.T) {
	repo, mock := newRefreshTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM refresh_tokens").
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
