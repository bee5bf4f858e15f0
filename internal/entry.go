// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/woragis/docserve/internal/api"
	"github.com/woragis/docserve/internal/docservice"
	"github.com/woragis/docserve/internal/health"
	"github.com/woragis/docserve/internal/metrics"
	"github.com/woragis/docserve/internal/parser"
	"github.com/woragis/docserve/internal/storage"
)

// ServiceVersion is reported in the root service descriptor.
const ServiceVersion = "0.1.0"

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("docs_root", cfg.Docs.Root),
		slog.String("markdown_extensions", cfg.Docs.MarkdownExtensions),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure the docs directory exists.
	if err := os.MkdirAll(cfg.Docs.Root, 0o755); err != nil {
		return fmt.Errorf("create docs dir: %w", err)
	}

	svc, err := BuildService(cfg)
	if err != nil {
		return err
	}

	checker := health.NewChecker(cfg.Docs.Root)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(api.RequestIDHeader)
	r.Use(api.RequestLogger(logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)

	if cfg.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.Origins(),
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
		}))
	}

	// Service descriptor.
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		api.WriteServiceInfo(w, ServiceVersion)
	})

	// Health and metrics (unauthenticated operational endpoints).
	r.Get("/healthz", checker.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Mount documentation routes.
	r.Mount("/api/v1/docs", api.NewRouter(svc))

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server.
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// BuildService constructs the document service from configuration.
// Shared between the HTTP server and the MCP stdio entrypoint.
func BuildService(cfg *Config) (*docservice.Service, error) {
	store, err := storage.NewFS(cfg.Docs.Root)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	return docservice.NewService(store, parser.New(cfg.Docs.ExtensionList())), nil
}
