package http

import (
	"log/slog"
	"net/http"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/httputil"
)

// TemplateHandler handles HTTP requests for workout template endpoints.
type TemplateHandler struct {
	service *service.TemplateService
	logger  *slog.Logger
}

// NewTemplateHandler creates a new template HTTP handler.
func NewTemplateHandler(svc *service.TemplateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{service: svc, logger: logger}
}

// CreateTemplateRequest is the JSON request body for creating a user template.
type CreateTemplateRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=200"`
	Description string            `json:"description" validate:"max=2000"`
	Equipment   string            `json:"equipment" validate:"max=100"`
	Goal        string            `json:"goal" validate:"max=100"`
	Exercises   []ExerciseRequest `json:"exercises" validate:"dive"`
}

// FromTemplateRequest selects a template to instantiate as a plan.
type FromTemplateRequest struct {
	TemplateID     string `json:"templateId"`
	UserTemplateID int64  `json:"userTemplateId"`
	Name           string `json:"name" validate:"max=200"`
	Week           int    `json:"week" validate:"omitempty,gte=1,lte=52"`
}

// List handles GET /api/workout-templates
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.TemplateFilter{
		Equipment: q.Get("equipment"),
		Goal:      q.Get("goal"),
	}

	views, err := h.service.List(r.Context(), currentUser(r).ID, filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, views, "")
}

// Create handles POST /api/workout-templates
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.service.Create(r.Context(), currentUser(r).ID, service.CreateTemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Equipment:   req.Equipment,
		Goal:        req.Goal,
		Exercises:   exerciseInputs(req.Exercises),
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, t, "Template created")
}

// AddExercise handles POST /api/workout-templates/{id}/exercises
func (h *TemplateHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	templateID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req ExerciseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.service.AddExercise(r.Context(), currentUser(r).ID, templateID, service.ExerciseInput{
		Name:        req.Name,
		Description: req.Description,
		Sets:        req.Sets,
		Reps:        req.Reps,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, e, "Exercise added to template")
}

// Delete handles DELETE /api/workout-templates/{id}
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), currentUser(r).ID, id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, nil, "Template deleted")
}

// InstantiatePlan handles POST /api/workout-plans/from-template
func (h *TemplateHandler) InstantiatePlan(w http.ResponseWriter, r *http.Request) {
	var req FromTemplateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.service.InstantiatePlan(r.Context(), currentUser(r).ID, service.FromTemplateInput{
		TemplateID:     req.TemplateID,
		UserTemplateID: req.UserTemplateID,
		Name:           req.Name,
		Week:           req.Week,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, p, "Workout plan created from template")
}
