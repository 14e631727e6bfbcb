// Package app wires together configuration, storage, services, and the HTTP
// server, and owns the application lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/auth"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/cache"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/config"
	handler "github.com/ParadigmParadoxicalPiercer/para-praxis/internal/handler/http"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/migrations"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/repository/postgres"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/database"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/health"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/middleware"
)

// tokenSweepInterval is how often expired refresh records are purged.
const tokenSweepInterval = time.Hour

// App wires together all dependencies and runs the API server.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	redis      *redis.Client
	authSvc    *service.AuthService
	httpServer *http.Server
}

// New creates the application, connecting to PostgreSQL and Redis and
// building the full dependency graph.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pgCfg := cfg.Postgres()
	pool, err := database.NewPostgresPool(ctx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", pgCfg.Host),
		slog.Int("port", pgCfg.Port),
		slog.String("database", pgCfg.DBName),
	)

	if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("database migrations completed")

	// Redis is best-effort: the stats cache degrades to direct queries
	// when it is unreachable, so a failed connection is not fatal.
	var statsCache *cache.StatsCache
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis())
	if err != nil {
		logger.Warn("redis unavailable, stats caching disabled", slog.String("error", err.Error()))
		redisClient = nil
	} else {
		logger.Info("connected to Redis", slog.String("addr", cfg.Redis().Addr()))
		statsCache = cache.NewStatsCache(redisClient, logger)
	}

	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	hasher := auth.NewHasher(cfg.BcryptCost)

	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewRefreshTokenRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	workoutRepo := postgres.NewWorkoutRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	focusRepo := postgres.NewFocusRepository(pool)
	mediaRepo := postgres.NewMediaRepository(pool)

	authSvc := service.NewAuthService(userRepo, tokenRepo, jwtManager, hasher, logger)
	userSvc := service.NewUserService(userRepo, statsCache, logger)
	journalSvc := service.NewJournalService(journalRepo, statsCache, logger)
	taskSvc := service.NewTaskService(taskRepo, statsCache, logger)
	workoutSvc := service.NewWorkoutService(workoutRepo, statsCache, logger)
	templateSvc := service.NewTemplateService(templateRepo, workoutRepo, statsCache, logger)
	focusSvc := service.NewFocusService(focusRepo, statsCache, logger)
	mediaSvc := service.NewMediaService(mediaRepo, taskRepo, journalRepo, workoutRepo, logger)

	healthHandler := health.NewHandler()
	healthHandler.RegisterCritical("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	if redisClient != nil {
		healthHandler.RegisterNonCritical("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	router := handler.NewRouter(handler.RouterConfig{
		Auth:         authSvc,
		Users:        userSvc,
		Journals:     journalSvc,
		Tasks:        taskSvc,
		Workouts:     workoutSvc,
		Templates:    templateSvc,
		Focus:        focusSvc,
		Media:        mediaSvc,
		Health:       healthHandler,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
		SecureCookie: cfg.IsProduction(),
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		pool:       pool,
		redis:      redisClient,
		authSvc:    authSvc,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and the refresh token sweeper, and blocks until
// the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go a.sweepLoop(ctx)

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// sweepLoop periodically purges expired refresh token records.
func (a *App) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(tokenSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			deleted, err := a.authSvc.SweepExpiredTokens(sweepCtx)
			cancel()
			if err != nil {
				a.logger.Error("refresh token sweep failed", slog.String("error", err.Error()))
				continue
			}
			if deleted > 0 {
				a.logger.Info("expired refresh tokens purged", slog.Int64("count", deleted))
			}
		}
	}
}

// Shutdown gracefully stops all components: the HTTP server drains in-flight
// requests before the storage connections close.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.pool.Close()

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
