package handlers

import (
	"net/http"
	"time"

	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
	galleryviews "skylight/views/gallery"
)

// WebHandler serves the gallery's HTML pages
type WebHandler struct {
	logger  *core.Logger
	service GalleryService
}

// NewWebHandler creates a new web handler
func NewWebHandler(logger *core.Logger, service GalleryService) *WebHandler {
	return &WebHandler{
		logger:  logger,
		service: service,
	}
}

// Home renders the gallery page with the current snapshot
func (h *WebHandler) Home(w http.ResponseWriter, r *http.Request) {
	view := h.service.CurrentView()

	component := galleryviews.Page(view, defaultStart(view), "")
	component.Render(r.Context(), w)
}

// Gallery runs a load cycle for the requested start date and renders the result
func (h *WebHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.WithContext(r.Context())

	start := r.URL.Query().Get("start")
	window, err := models.WindowFromDate(start)
	if err != nil {
		logger.Warn("Rejected gallery request with bad start date", "start", start, "error", err)
		w.WriteHeader(http.StatusBadRequest)
		view := h.service.CurrentView()
		component := galleryviews.Page(view, defaultStart(view), "Enter a date as YYYY-MM-DD.")
		component.Render(r.Context(), w)
		return
	}

	view := h.service.LoadWindow(r.Context(), window)

	component := galleryviews.Page(view, window.StartDate(), "")
	component.Render(r.Context(), w)
}

// defaultStart picks the date the form offers: the snapshot's window when
// there is one, otherwise the window ending today.
func defaultStart(view models.GalleryView) string {
	if !view.Window.Start.IsZero() {
		return view.Window.StartDate()
	}

	today := time.Now().UTC()
	return today.AddDate(0, 0, -(models.WindowSize - 1)).Format(models.DateLayout)
}
