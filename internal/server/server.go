package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"skylight/internal/core"
	"skylight/internal/features/gallery"
	"skylight/internal/server/handlers"
)

type Server struct {
	config     *core.Config
	logger     *slog.Logger
	coreLogger *core.Logger
	metrics    *core.Metrics
	registry   *core.Registry
	server     *http.Server
}

func New(logger *slog.Logger) *Server {
	// Load configuration using the core config system
	config, err := core.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize core components
	coreLogger := core.NewLogger()
	metrics := core.NewMetrics()
	registry := core.NewRegistry(coreLogger)

	// Initialize gallery feature if enabled
	if config.IsFeatureEnabled("gallery") {
		galleryConfig := gallery.NewConfig(config)
		galleryFeature, err := gallery.NewFeature(coreLogger, galleryConfig, metrics)
		if err != nil {
			logger.Error("Failed to create gallery feature", "error", err)
			os.Exit(1)
		}

		if err := registry.Register(galleryFeature); err != nil {
			logger.Error("Failed to register gallery feature", "error", err)
			os.Exit(1)
		}
	}

	srv := &Server{
		config:     config,
		logger:     logger,
		coreLogger: coreLogger,
		metrics:    metrics,
		registry:   registry,
	}

	// Setup routes
	srv.setupRoutes()

	return srv
}

func (s *Server) setupRoutes() {
	// Initialize portal handler
	portalHandler := handlers.NewPortalHandler(s.coreLogger, s.registry)

	// Create router
	mux := chi.NewRouter()

	// Add middleware
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Logger)

	// Health check
	mux.Get("/health", portalHandler.HealthCheckHandler)
	mux.Get("/api/v1/healthcheck", portalHandler.HealthCheckHandler)

	// Feature status
	mux.Get("/api/v1/features", portalHandler.FeatureStatusHandler)

	// Prometheus metrics
	mux.Method("GET", "/metrics", s.metrics.Handler())

	// Static assets
	mux.Get("/assets/*", handlers.StaticHandler)

	// Feature routes - use the registry to get all feature routes
	routes := s.registry.GetAllRoutes()
	for _, route := range routes {
		mux.Method(route.Method, route.Path, route.Handler)
	}

	// API consumers get a JSON 404, page visitors a plain one
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			appErr := core.NewNotFoundError("no such endpoint", nil)
			core.WriteErrorResponse(w, core.GetHTTPStatusCode(appErr), appErr)
			return
		}
		http.NotFound(w, r)
	})

	// Create HTTP server
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler: mux,
	}
}

func (s *Server) Start() error {
	// Initialize all features
	ctx := context.Background()
	if err := s.registry.InitAll(ctx); err != nil {
		s.logger.Error("Failed to initialize features", "error", err)
		return err
	}

	// Start HTTP server
	s.logger.Info("Starting server", "host", s.config.Server.Host, "port", s.config.Server.Port)

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	// Shutdown all features
	if err := s.registry.ShutdownAll(ctx); err != nil {
		s.logger.Error("Failed to shutdown features", "error", err)
	}

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
