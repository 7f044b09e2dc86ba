package gallery

import (
	"context"

	"skylight/internal/core"
	"skylight/internal/features/gallery/handlers"
)

// Feature represents the daily-image gallery feature
type Feature struct {
	*core.BaseFeature
	config     *Config
	service    *Service
	webHandler *handlers.WebHandler
	apiHandler *handlers.APIHandler
}

// NewFeature creates a new gallery feature
func NewFeature(logger *core.Logger, config *Config, metrics *core.Metrics) (*Feature, error) {
	featureLogger := logger.ForFeature("gallery")

	// Create the load pipeline for the configured source
	service, err := NewService(featureLogger, config, metrics)
	if err != nil {
		return nil, err
	}

	// Create handlers
	webHandler := handlers.NewWebHandler(featureLogger, service)
	apiHandler := handlers.NewAPIHandler(featureLogger, service)

	feature := &Feature{
		BaseFeature: core.NewBaseFeature("gallery", "Daily sky image gallery", config.Enabled, logger, config),
		config:      config,
		service:     service,
		webHandler:  webHandler,
		apiHandler:  apiHandler,
	}

	return feature, nil
}

// Init initializes the gallery feature
func (f *Feature) Init(ctx context.Context) error {
	if err := f.BaseFeature.Init(ctx); err != nil {
		return err
	}

	// Validate configuration
	if err := f.config.Validate(); err != nil {
		return core.NewFeatureError("gallery", "invalid configuration", err)
	}

	f.Logger().Info("Gallery feature initialized successfully", "source", f.config.Source)
	return nil
}

// Routes returns the HTTP routes for the gallery feature
func (f *Feature) Routes() []core.Route {
	return []core.Route{
		// Web interface routes
		{Method: "GET", Path: "/", Handler: f.webHandler.Home},
		{Method: "GET", Path: "/gallery", Handler: f.webHandler.Gallery},

		// API routes
		{Method: "GET", Path: "/api/v1/gallery", Handler: f.apiHandler.GetGallery},
	}
}

// Shutdown gracefully shuts down the gallery feature
func (f *Feature) Shutdown(ctx context.Context) error {
	f.Logger().Info("Shutting down gallery feature")
	return f.BaseFeature.Shutdown(ctx)
}

// GetService returns the gallery service
func (f *Feature) GetService() *Service {
	return f.service
}
