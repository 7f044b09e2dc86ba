package handlers

import (
	"encoding/json"
	"net/http"

	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
)

// APIHandler serves the gallery's JSON endpoints
type APIHandler struct {
	logger  *core.Logger
	service GalleryService
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(logger *core.Logger, service GalleryService) *APIHandler {
	return &APIHandler{
		logger:  logger,
		service: service,
	}
}

// galleryResponse is the JSON shape of a reconciled gallery window
type galleryResponse struct {
	State  string               `json:"state"`
	Start  string               `json:"start,omitempty"`
	End    string               `json:"end,omitempty"`
	Loaded int                  `json:"loaded"`
	Items  []models.GalleryItem `json:"items"`
}

// GetGallery returns the reconciled gallery for a window. With a start
// parameter it runs a load cycle first; without one it returns the
// current snapshot.
func (h *APIHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.WithContext(r.Context())

	var view models.GalleryView
	if start := r.URL.Query().Get("start"); start != "" {
		window, err := models.WindowFromDate(start)
		if err != nil {
			appErr := core.NewValidationError("start must be a date in YYYY-MM-DD form", err)
			core.WriteErrorResponse(w, core.GetHTTPStatusCode(appErr), appErr)
			return
		}
		view = h.service.LoadWindow(r.Context(), window)
	} else {
		view = h.service.CurrentView()
	}

	response := galleryResponse{
		State:  view.State.String(),
		Loaded: view.Loaded,
		Items:  view.Items,
	}
	if response.Items == nil {
		response.Items = []models.GalleryItem{}
	}
	if !view.Window.Start.IsZero() {
		response.Start = view.Window.StartDate()
		response.End = view.Window.EndDate()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode gallery response", "error", err)
	}
}
