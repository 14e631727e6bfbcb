package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/httputil"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// FocusHandler handles HTTP requests for focus session endpoints.
type FocusHandler struct {
	service *service.FocusService
	logger  *slog.Logger
}

// NewFocusHandler creates a new focus HTTP handler.
func NewFocusHandler(svc *service.FocusService, logger *slog.Logger) *FocusHandler {
	return &FocusHandler{service: svc, logger: logger}
}

// LogSessionRequest is the JSON request body for recording a session.
type LogSessionRequest struct {
	Duration    int        `json:"duration" validate:"required,gte=1,lte=86400"`
	Task        string     `json:"task" validate:"max=200"`
	Notes       string     `json:"notes" validate:"max=2000"`
	CompletedAt *time.Time `json:"completedAt"`
}

// Log handles POST /api/focus
func (h *FocusHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req LogSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.service.Log(r.Context(), currentUser(r).ID, service.LogSessionInput{
		Duration:    req.Duration,
		Task:        req.Task,
		Notes:       req.Notes,
		CompletedAt: req.CompletedAt,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, s, "Focus session logged")
}

// List handles GET /api/focus
func (h *FocusHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), currentUser(r).ID, pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, result, "")
}

// Stats handles GET /api/focus/stats
func (h *FocusHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context(), currentUser(r).ID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, stats, "")
}
