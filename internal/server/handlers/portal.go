package handlers

import (
	"encoding/json"
	"net/http"

	"skylight/internal/core"
)

// PortalHandler handles the portal's service endpoints
type PortalHandler struct {
	logger   *core.Logger
	registry *core.Registry
}

// NewPortalHandler creates a new portal handler
func NewPortalHandler(logger *core.Logger, registry *core.Registry) *PortalHandler {
	return &PortalHandler{
		logger:   logger,
		registry: registry,
	}
}

// HealthCheckHandler provides a health check endpoint
func (h *PortalHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "skylight",
		"version": "1.0.0",
	})
}

// FeatureStatusHandler lists the registered features and whether they are enabled
func (h *PortalHandler) FeatureStatusHandler(w http.ResponseWriter, r *http.Request) {
	status := h.registry.GetFeatureStatus()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.Error("Failed to encode feature status", "error", err)
	}
}
