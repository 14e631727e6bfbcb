package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/health"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/middleware"
)

// RouterConfig holds the services and settings the router wires together.
type RouterConfig struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Journals  *service.JournalService
	Tasks     *service.TaskService
	Workouts  *service.WorkoutService
	Templates *service.TemplateService
	Focus     *service.FocusService
	Media     *service.MediaService

	Health       *health.Handler
	CORS         middleware.CORSConfig
	SecureCookie bool
	Logger       *slog.Logger
}

// NewRouter creates a chi router with all API routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics())

	// Health check endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	authHandler := NewAuthHandler(cfg.Auth, cfg.Auth.RefreshExpiry(), cfg.SecureCookie, cfg.Logger)
	requireAuth := middleware.Auth(cfg.Auth.ValidateAccessToken, cfg.Logger)

	// Auth endpoints (public). Login and register are rate limited per IP.
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(rate.Limit(1), 10, cfg.Logger))

			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})
		r.Post("/refresh", authHandler.Refresh)

		// Authenticated auth endpoints
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})

		// Change-password gets its own bucket so a stuffing attempt cannot
		// ride on the register/login allowance.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(rate.Limit(1), 10, cfg.Logger))
			r.Use(requireAuth)

			r.Post("/change-password", authHandler.ChangePassword)
		})
	})

	userHandler := NewUserHandler(cfg.Users, cfg.Logger)
	r.Route("/api/users", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/profile", userHandler.Profile)
		r.Put("/profile", userHandler.UpdateProfile)
		r.Delete("/profile", userHandler.DeleteProfile)
		r.Get("/stats", userHandler.Stats)
	})

	journalHandler := NewJournalHandler(cfg.Journals, cfg.Logger)
	r.Route("/api/journals", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/", journalHandler.List)
		r.Post("/", journalHandler.Create)
		r.Get("/{id}", journalHandler.Get)
		r.Patch("/{id}", journalHandler.Update)
		r.Delete("/{id}", journalHandler.Delete)
	})

	taskHandler := NewTaskHandler(cfg.Tasks, cfg.Logger)
	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Get("/{id}", taskHandler.Get)
		r.Patch("/{id}", taskHandler.Update)
		r.Delete("/{id}", taskHandler.Delete)
	})

	workoutHandler := NewWorkoutHandler(cfg.Workouts, cfg.Logger)
	templateHandler := NewTemplateHandler(cfg.Templates, cfg.Logger)
	r.Route("/api/workout-plans", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/", workoutHandler.ListPlans)
		r.Post("/", workoutHandler.CreatePlan)
		r.Post("/from-template", templateHandler.InstantiatePlan)
		r.Get("/{id}", workoutHandler.GetPlan)
		r.Patch("/{id}", workoutHandler.UpdatePlan)
		r.Delete("/{id}", workoutHandler.DeletePlan)
		r.Post("/{id}/exercises", workoutHandler.CreateExercise)
	})

	r.Route("/api/workout-exercises", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/{id}", workoutHandler.GetExercise)
		r.Patch("/{id}", workoutHandler.UpdateExercise)
		r.Delete("/{id}", workoutHandler.DeleteExercise)
		r.Patch("/{id}/complete", workoutHandler.CompleteExercise)
		r.Patch("/{id}/incomplete", workoutHandler.UncompleteExercise)
	})

	r.Route("/api/workout-templates", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/", templateHandler.List)
		r.Post("/", templateHandler.Create)
		r.Post("/{id}/exercises", templateHandler.AddExercise)
		r.Delete("/{id}", templateHandler.Delete)
	})

	focusHandler := NewFocusHandler(cfg.Focus, cfg.Logger)
	r.Route("/api/focus", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/", focusHandler.List)
		r.Post("/", focusHandler.Log)
		r.Get("/stats", focusHandler.Stats)
	})

	mediaHandler := NewMediaHandler(cfg.Media, cfg.Logger)
	r.Route("/api/media", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/", mediaHandler.List)
		r.Post("/", mediaHandler.Create)
		r.Get("/{id}", mediaHandler.Get)
		r.Delete("/{id}", mediaHandler.Delete)
	})

	return r
}
