package gallery

import (
	"context"

	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
	"skylight/internal/features/gallery/services"
)

// Service runs the gallery's load cycle: fetch the window's entries,
// reconcile them against the window, and settle the controller with the
// result.
type Service struct {
	logger     *core.Logger
	loader     *services.Loader
	reconciler *services.Reconciler
	controller *Controller
}

// NewService wires the gallery pipeline for the configured source
func NewService(logger *core.Logger, config *Config, metrics *core.Metrics) (*Service, error) {
	source, err := services.NewSource(logger, config.SourceConfig())
	if err != nil {
		return nil, err
	}

	return &Service{
		logger:     logger,
		loader:     services.NewLoader(source, logger, metrics),
		reconciler: services.NewReconciler(logger),
		controller: NewController(),
	}, nil
}

// LoadWindow runs one load cycle for the window and returns the resulting
// view. A cycle already in flight is left undisturbed and the current view
// is returned instead.
func (s *Service) LoadWindow(ctx context.Context, window models.Window) models.GalleryView {
	if !s.controller.Begin() {
		s.logger.Info("Load already in flight, rendering current snapshot", "start", window.StartDate())
		return s.controller.View()
	}

	entries, ok := s.loader.Load(ctx, window)
	matched := s.reconciler.Reconcile(window, entries)
	view := models.NewGalleryView(window, matched, len(entries))

	if ok {
		s.controller.Finish(view)
	} else {
		s.controller.Fail(view, services.ErrUpstreamUnavailable)
	}

	return s.controller.View()
}

// CurrentView returns the last settled view without starting a load
func (s *Service) CurrentView() models.GalleryView {
	return s.controller.View()
}

// State returns the controller's current state
func (s *Service) State() models.State {
	return s.controller.State()
}
