package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	apperrors "github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/middleware"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

type mockJournalRepo struct {
	mock.Mock
}

func (m *mockJournalRepo) Create(ctx context.Context, j *domain.Journal) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *mockJournalRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Journal, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *mockJournalRepo) List(ctx context.Context, userID int64, filter domain.JournalFilter, p pagination.Params) ([]domain.Journal, int64, error) {
	args := m.Called(ctx, userID, filter, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Journal), args.Get(1).(int64), args.Error(2)
}

func (m *mockJournalRepo) Update(ctx context.Context, j *domain.Journal) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *mockJournalRepo) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// noopCmdable satisfies cache.Cmdable with cache misses and accepted writes.
type noopCmdable struct{}

func (noopCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetErr(redis.Nil)
	return cmd
}

func (noopCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (noopCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(int64(len(keys)), nil)
}

func testStatsCache() *cache.StatsCache {
	return cache.NewStatsCache(noopCmdable{}, handlerTestLogger())
}

func journalTestRouter(repo *mockJournalRepo, userID int64) *chi.Mux {
	svc := service.NewJournalService(repo, testStatsCache(), handlerTestLogger())
	handler := NewJournalHandler(svc, handlerTestLogger())

	validator := func(ctx context.Context, token string) (*middleware.AuthUser, error) {
		return &middleware.AuthUser{ID: userID, Email: "test@example.com", Name: "Test"}, nil
	}

	r := chi.NewRouter()
	r.Route("/api/journals", func(r chi.Router) {
		r.Use(middleware.Auth(validator, handlerTestLogger()))
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func sampleJournal(id, userID int64) domain.Journal {
	now := time.Now().UTC()
	return domain.Journal{
		ID:        id,
		UserID:    userID,
		Title:     "Morning pages",
		Content:   "Slept well, long run planned.",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestJournalList_PaginationEnvelope(t *testing.T) {
	repo := new(mockJournalRepo)
	router := journalTestRouter(repo, 1)

	items := []domain.Journal{sampleJournal(1, 1), sampleJournal(2, 1)}
	repo.On("List", mock.Anything, int64(1), domain.JournalFilter{}, pagination.Params{Page: 2, Limit: 2, Offset: 2}).
		Return(items, int64(5), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/journals/?page=2&limit=2", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.Nil(t, resp.Error)

	data := resp.Data.(map[string]any)
	assert.Len(t, data["items"], 2)
	assert.EqualValues(t, 5, data["totalCount"])
	assert.EqualValues(t, 3, data["totalPages"])
	assert.Equal(t, true, data["hasNext"])
	assert.Equal(t, true, data["hasPrev"])
}

func TestJournalList_SearchFilter(t *testing.T) {
	repo := new(mockJournalRepo)
	router := journalTestRouter(repo, 1)

	repo.On("List", mock.Anything, int64(1), domain.JournalFilter{Search: "run"}, mock.Anything).
		Return([]domain.Journal{sampleJournal(1, 1)}, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/journals/?q=run", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestJournalGet_NotFound(t *testing.T) {
	repo := new(mockJournalRepo)
	router := journalTestRouter(repo, 1)

	repo.On("GetByID", mock.Anything, int64(1), int64(99)).Return(nil, apperrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/journals/99", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestJournalGet_InvalidID(t *testing.T) {
	repo := new(mockJournalRepo)
	router := journalTestRouter(repo, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/journals/abc", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalCreate_Success(t *testing.T) {
	repo := new(mockJournalRepo)
	router := journalTestRouter(repo, 1)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Journal) bool {
		return j.UserID == 1 && j.Title == "Morning pages"
	})).Return(nil)

	body := jsonBody(t, map[string]string{
		"title":   "Morning pages",
		"content": "Slept well.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/journals/", body)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	repo.AssertExpectations(t)
}

func TestJournalCreate_MissingTitle(t *testing.T) {
	repo := new(mockJournalRepo)
	router := journalTestRouter(repo, 1)

	body := jsonBody(t, map[string]string{"content": "no title"})
	req := httptest.NewRequest(http.MethodPost, "/api/journals/", body)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Fields, "title")
}

func TestJournalUpdate_PartialPatch(t *testing.T) {
	repo := new(mockJournalRepo)
	router := journalTestRouter(repo, 1)

	existing := sampleJournal(5, 1)
	repo.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(j *domain.Journal) bool {
		// Only the title changes; untouched fields keep their values.
		return j.ID == 5 && j.Title == "Evening pages" && j.Content == existing.Content
	})).Return(nil)

	body := jsonBody(t, map[string]string{"title": "Evening pages"})
	req := httptest.NewRequest(http.MethodPatch, "/api/journals/5", body)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestJournalDelete_Success(t *testing.T) {
	repo := new(mockJournalRepo)
	router := journalTestRouter(repo, 1)

	repo.On("Delete", mock.Anything, int64(1), int64(5)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/journals/5", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}
