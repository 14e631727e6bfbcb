package http

import (
	"log/slog"
	"net/http"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/httputil"
)

// MediaHandler handles HTTP requests for media attachment endpoints.
type MediaHandler struct {
	service *service.MediaService
	logger  *slog.Logger
}

// NewMediaHandler creates a new media HTTP handler.
func NewMediaHandler(svc *service.MediaService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{service: svc, logger: logger}
}

// CreateMediaRequest is the JSON request body for registering an upload.
type CreateMediaRequest struct {
	URL               string `json:"url" validate:"required,url"`
	PublicID          string `json:"publicId" validate:"required,max=255"`
	TaskID            *int64 `json:"taskId"`
	JournalID         *int64 `json:"journalId"`
	WorkoutExerciseID *int64 `json:"workoutExerciseId"`
}

// Create handles POST /api/media
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMediaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.service.Create(r.Context(), currentUser(r).ID, service.CreateMediaInput{
		URL:        req.URL,
		PublicID:   req.PublicID,
		TaskID:     req.TaskID,
		JournalID:  req.JournalID,
		ExerciseID: req.WorkoutExerciseID,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, m, "Media created")
}

// List handles GET /api/media
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), currentUser(r).ID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, items, "")
}

// Get handles GET /api/media/{id}
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	m, err := h.service.Get(r.Context(), currentUser(r).ID, id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, m, "")
}

// Delete handles DELETE /api/media/{id}
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), currentUser(r).ID, id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, nil, "Media deleted")
}
