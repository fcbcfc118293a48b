// Package main is the entrypoint for the mock data API that serves the
// console's record collections over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/promodesk/promodesk/internal/config"
	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/handler"
	"github.com/promodesk/promodesk/internal/logging"
	"github.com/promodesk/promodesk/internal/metrics"
	"github.com/promodesk/promodesk/internal/middleware"
	"github.com/promodesk/promodesk/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	if cfg.DatasetSource == config.SourceHTTP {
		logger.Error("mock API cannot proxy another API; use DATASET_SOURCE=fixtures")
		os.Exit(1)
	}

	ds, err := dataset.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}

	recorder := metrics.NewInMemory()
	r := setupRouter(ds, recorder, cfg, logger)

	srv := server.New(r, server.Config{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)
	srv.OnShutdown("metrics", func(context.Context) error {
		s := recorder.Snapshot()
		logger.Info("served datasets", "count", s.DatasetsServed)
		return nil
	})

	logger.Info("starting mock API",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"dataset_dir", cfg.DatasetDir,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(ds *dataset.Dataset, recorder metrics.Recorder, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	h := handler.New(ds, recorder, logger)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"dataset": handler.HealthCheckFunc(func(context.Context) error {
			return requireViews(ds)
		}),
	})

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.GetCORSAllowedOrigins())))

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	r.Route("/api/v1/datasets", func(r chi.Router) {
		r.Get("/", h.Index)
		r.Get("/{kind}", h.Get)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

// requireViews fails while any list-view collection is empty.
func requireViews(ds *dataset.Dataset) error {
	if empty := ds.Empty(dataset.ViewKinds...); len(empty) > 0 {
		return fmt.Errorf("empty collections: %s", strings.Join(empty, ", "))
	}
	return nil
}
