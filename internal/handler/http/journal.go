package http

import (
	"log/slog"
	"net/http"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/httputil"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// JournalHandler handles HTTP requests for journal endpoints.
type JournalHandler struct {
	service *service.JournalService
	logger  *slog.Logger
}

// NewJournalHandler creates a new journal HTTP handler.
func NewJournalHandler(svc *service.JournalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{service: svc, logger: logger}
}

// CreateJournalRequest is the JSON request body for creating an entry.
type CreateJournalRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"max=10000"`
}

// UpdateJournalRequest is the JSON request body for partial updates.
type UpdateJournalRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" validate:"omitempty,max=10000"`
}

// List handles GET /api/journals
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.JournalFilter{Search: r.URL.Query().Get("q")}

	result, err := h.service.List(r.Context(), currentUser(r).ID, filter, pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, result, "")
}

// Get handles GET /api/journals/{id}
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	j, err := h.service.Get(r.Context(), currentUser(r).ID, id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, j, "")
}

// Create handles POST /api/journals
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateJournalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	j, err := h.service.Create(r.Context(), currentUser(r).ID, service.CreateJournalInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, j, "Journal created")
}

// Update handles PATCH /api/journals/{id}
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdateJournalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	j, err := h.service.Update(r.Context(), currentUser(r).ID, id, service.UpdateJournalInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, j, "Journal updated")
}

// Delete handles DELETE /api/journals/{id}
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), currentUser(r).ID, id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, nil, "Journal deleted")
}
