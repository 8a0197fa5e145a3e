package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"courses/internal/api/v1/dto"
	"courses/internal/api/v1/handler"
	"courses/internal/config"
	"courses/internal/database"
	"courses/internal/middleware"
	"courses/internal/repository"
	"courses/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New builds the HTTP handler and the course store it serves. The returned
// func releases the store and must be called on shutdown.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (http.Handler, func(), error) {
	logger.Info().Str("environment", cfg.Environment).Str("store_backend", cfg.StoreBackend).Msg("Router initialized")

	// 1. Open the course store
	courseRepo, closeStore, err := openCourseRepo(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	h, err := newWithRepo(ctx, cfg, logger, courseRepo)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return h, closeStore, nil
}

// newWithRepo checks that courseRepo answers and wires it into the handler chain
func newWithRepo(ctx context.Context, cfg *config.Config, logger zerolog.Logger, courseRepo repository.CourseRepository) (http.Handler, error) {
	if err := courseRepo.Ping(ctx); err != nil {
		return nil, fmt.Errorf("course store not ready: %w", err)
	}

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize services & handlers
	courseSvc := service.NewCourseService(courseRepo)
	healthSvc := service.NewHealthService(cfg.HealthCheckResponse)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	healthHandler := handler.NewHealthHandler(healthSvc, logger)

	// 4. Create ServeMux router
	mux := http.NewServeMux()
	healthHandler.RegisterRoutes(mux)
	courseHandler.RegisterRoutes(mux)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponseDTO{ErrorMsg: "Resource not found"})
	})

	// 5. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	var h http.Handler = c.Handler(mux)
	h = middleware.RecoverMiddleware(logger)(h)
	h = middleware.LoggerMiddleware(logger)(h)
	h = middleware.RequestIDMiddleware(h)
	return h, nil
}

func openCourseRepo(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.CourseRepository, func(), error) {
	if cfg.StoreBackend != config.BackendPostgres {
		logger.Info().Msg("Using in-memory course store")
		return repository.NewMemoryCourseRepo(logger), func() {}, nil
	}

	dsn := database.PrepareDSN(cfg.DBConnectionString, cfg.Environment)
	if cfg.MigrateOnStart {
		if err := database.Migrate(dsn, logger); err != nil {
			return nil, nil, fmt.Errorf("migrating database: %w", err)
		}
	}

	pool, err := database.NewPool(ctx, dsn, cfg.DBMaxConns, logger)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPostgresCourseRepo(pool, logger), pool.Close, nil
}
