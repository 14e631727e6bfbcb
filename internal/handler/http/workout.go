package http

import (
	"log/slog"
	"net/http"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/httputil"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/pagination"
)

// WorkoutHandler handles HTTP requests for workout plan and exercise endpoints.
type WorkoutHandler struct {
	service *service.WorkoutService
	logger  *slog.Logger
}

// NewWorkoutHandler creates a new workout HTTP handler.
func NewWorkoutHandler(svc *service.WorkoutService, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{service: svc, logger: logger}
}

// ExerciseRequest describes one exercise in a plan or template payload.
type ExerciseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Sets        int    `json:"sets" validate:"omitempty,gte=1,lte=100"`
	Reps        int    `json:"reps" validate:"omitempty,gte=1,lte=1000"`
}

// CreatePlanRequest is the JSON request body for creating a plan.
type CreatePlanRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=200"`
	Week        int               `json:"week" validate:"omitempty,gte=1,lte=52"`
	Description string            `json:"description" validate:"max=2000"`
	Equipment   string            `json:"equipment" validate:"max=100"`
	Goal        string            `json:"goal" validate:"max=100"`
	Exercises   []ExerciseRequest `json:"exercises" validate:"dive"`
}

// UpdatePlanRequest is the JSON request body for partial plan updates.
type UpdatePlanRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Week        *int    `json:"week" validate:"omitempty,gte=1,lte=52"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Equipment   *string `json:"equipment" validate:"omitempty,max=100"`
	Goal        *string `json:"goal" validate:"omitempty,max=100"`
}

// UpdateExerciseRequest is the JSON request body for partial exercise updates.
type UpdateExerciseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Sets        *int    `json:"sets" validate:"omitempty,gte=1,lte=100"`
	Reps        *int    `json:"reps" validate:"omitempty,gte=1,lte=1000"`
}

// CompleteExerciseRequest optionally carries notes for the log entry.
type CompleteExerciseRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

func exerciseInputs(reqs []ExerciseRequest) []service.ExerciseInput {
	inputs := make([]service.ExerciseInput, 0, len(reqs))
	for _, e := range reqs {
		inputs = append(inputs, service.ExerciseInput{
			Name:        e.Name,
			Description: e.Description,
			Sets:        e.Sets,
			Reps:        e.Reps,
		})
	}
	return inputs
}

// --- Plans ---

// ListPlans handles GET /api/workout-plans
func (h *WorkoutHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPlans(r.Context(), currentUser(r).ID, pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, result, "")
}

// GetPlan handles GET /api/workout-plans/{id}
func (h *WorkoutHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	p, err := h.service.GetPlan(r.Context(), currentUser(r).ID, id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, p, "")
}

// CreatePlan handles POST /api/workout-plans
func (h *WorkoutHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.service.CreatePlan(r.Context(), currentUser(r).ID, service.CreatePlanInput{
		Name:        req.Name,
		Week:        req.Week,
		Description: req.Description,
		Equipment:   req.Equipment,
		Goal:        req.Goal,
		Exercises:   exerciseInputs(req.Exercises),
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, p, "Workout plan created")
}

// UpdatePlan handles PATCH /api/workout-plans/{id}
func (h *WorkoutHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.service.UpdatePlan(r.Context(), currentUser(r).ID, id, service.UpdatePlanInput{
		Name:        req.Name,
		Week:        req.Week,
		Description: req.Description,
		Equipment:   req.Equipment,
		Goal:        req.Goal,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, p, "Workout plan updated")
}

// DeletePlan handles DELETE /api/workout-plans/{id}
func (h *WorkoutHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePlan(r.Context(), currentUser(r).ID, id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, nil, "Workout plan deleted")
}

// --- Exercises ---

// CreateExercise handles POST /api/workout-plans/{id}/exercises
func (h *WorkoutHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	planID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req ExerciseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.service.AddExercise(r.Context(), currentUser(r).ID, planID, service.ExerciseInput{
		Name:        req.Name,
		Description: req.Description,
		Sets:        req.Sets,
		Reps:        req.Reps,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, e, "Exercise added")
}

// GetExercise handles GET /api/workout-exercises/{id}
func (h *WorkoutHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	e, err := h.service.GetExercise(r.Context(), currentUser(r).ID, id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, e, "")
}

// UpdateExercise handles PATCH /api/workout-exercises/{id}
func (h *WorkoutHandler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdateExerciseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.service.UpdateExercise(r.Context(), currentUser(r).ID, id, service.UpdateExerciseInput{
		Name:        req.Name,
		Description: req.Description,
		Sets:        req.Sets,
		Reps:        req.Reps,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, e, "Exercise updated")
}

// DeleteExercise handles DELETE /api/workout-exercises/{id}
func (h *WorkoutHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteExercise(r.Context(), currentUser(r).ID, id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, nil, "Exercise deleted")
}

// CompleteExercise handles PATCH /api/workout-exercises/{id}/complete
func (h *WorkoutHandler) CompleteExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	// Body is optional here; an empty body means no notes.
	var req CompleteExerciseRequest
	if r.ContentLength > 0 {
		if !decodeAndValidate(w, r, &req) {
			return
		}
	}

	e, err := h.service.CompleteExercise(r.Context(), currentUser(r).ID, id, req.Notes)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, e, "Exercise completed")
}

// UncompleteExercise handles PATCH /api/workout-exercises/{id}/incomplete
func (h *WorkoutHandler) UncompleteExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	e, err := h.service.UncompleteExercise(r.Context(), currentUser(r).ID, id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, e, "Exercise marked incomplete")
}
