package core

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// The feed source requires a URL, so point it somewhere
	t.Setenv("SKY_FEED_URL", "https://example.com/feed.json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Server.Port != 4000 {
		t.Errorf("Expected default port 4000, got %d", config.Server.Port)
	}
	if config.Server.Host != "0.0.0.0" {
		t.Errorf("Expected default host 0.0.0.0, got %s", config.Server.Host)
	}
	if !config.Features.Gallery.Enabled {
		t.Error("Expected the gallery to be enabled by default")
	}
	if config.Features.Gallery.Source != GallerySourceFeed {
		t.Errorf("Expected default source %s, got %s", GallerySourceFeed, config.Features.Gallery.Source)
	}
	if config.Features.Gallery.FetchTimeout != 10 {
		t.Errorf("Expected default fetch timeout 10, got %d", config.Features.Gallery.FetchTimeout)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SKY_PORT", "8080")
	t.Setenv("SKY_GALLERY_SOURCE", "apod")
	t.Setenv("SKY_APOD_API_KEY", "REAL_KEY")
	t.Setenv("SKY_APOD_THUMBS", "false")
	t.Setenv("SKY_FETCH_TIMEOUT", "30")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", config.Server.Port)
	}
	if config.Features.Gallery.Source != GallerySourceAPOD {
		t.Errorf("Expected apod source, got %s", config.Features.Gallery.Source)
	}
	if config.Features.Gallery.APODAPIKey != "REAL_KEY" {
		t.Errorf("Expected the key from the environment, got %s", config.Features.Gallery.APODAPIKey)
	}
	if config.Features.Gallery.APODThumbs {
		t.Error("Expected thumbs to be disabled")
	}
	if config.Features.Gallery.FetchTimeout != 30 {
		t.Errorf("Expected fetch timeout 30, got %d", config.Features.Gallery.FetchTimeout)
	}
}

func TestLoadConfigRejectsFeedWithoutURL(t *testing.T) {
	t.Setenv("SKY_GALLERY_SOURCE", "feed")
	t.Setenv("SKY_FEED_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected config validation to fail without a feed URL")
	}
}

func TestConfigValidateRejectsBadPort(t *testing.T) {
	config := &Config{
		Server: ServerConfig{Port: 0, Host: "0.0.0.0"},
	}

	if err := config.Validate(); err == nil {
		t.Error("Expected validation to fail for port 0")
	}
}

func TestIsFeatureEnabled(t *testing.T) {
	config := &Config{
		Features: FeatureConfig{
			Gallery: GalleryConfig{Enabled: true},
		},
	}

	if !config.IsFeatureEnabled("gallery") {
		t.Error("Expected the gallery feature to be enabled")
	}
	if !config.IsFeatureEnabled("GALLERY") {
		t.Error("Expected the lookup to be case-insensitive")
	}
	if config.IsFeatureEnabled("weather") {
		t.Error("Expected unknown features to be disabled")
	}
}

func TestGetHTTPStatusCode(t *testing.T) {
	cases := []struct {
		err      *AppError
		expected int
	}{
		{NewValidationError("bad input", nil), http.StatusBadRequest},
		{NewNotFoundError("missing", nil), http.StatusNotFound},
		{NewUpstreamError("feed down", nil), http.StatusBadGateway},
		{NewInternalError("boom", nil), http.StatusInternalServerError},
		{NewConfigurationError("bad config", nil), http.StatusInternalServerError},
		{NewFeatureError("gallery", "broken", nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := GetHTTPStatusCode(tc.err); got != tc.expected {
			t.Errorf("Expected status %d for %s, got %d", tc.expected, tc.err.Code, got)
		}
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := NewUpstreamError("feed unreachable", cause)

	if !errors.Is(appErr, cause) {
		t.Error("Expected the app error to wrap its cause")
	}
}

func TestWriteErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	appErr := NewValidationError("start must be a date", nil)

	WriteErrorResponse(w, GetHTTPStatusCode(appErr), appErr)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if contentType := w.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("Expected application/json, got %s", contentType)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeValidation {
		t.Errorf("Expected a %s payload, got %+v", ErrCodeValidation, resp.Error)
	}
	if resp.Success {
		t.Error("Expected success to be false")
	}
}

func TestMetricsHandler(t *testing.T) {
	metrics := NewMetrics()
	metrics.FetchesTotal.WithLabelValues("feed", FetchOutcomeOK).Inc()
	metrics.EntriesLoaded.Add(9)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "skylight_fetches_total") {
		t.Error("Expected the fetch counter to be exported")
	}
	if !strings.Contains(body, `source="feed"`) {
		t.Error("Expected the source label to be exported")
	}
	if !strings.Contains(body, "skylight_entries_loaded_total 9") {
		t.Error("Expected the loaded-entries counter value")
	}
}

// stubFeature exercises the registry without a full feature build
type stubFeature struct {
	*BaseFeature
	routes []Route
	inits  int
}

func (f *stubFeature) Init(ctx context.Context) error {
	f.inits++
	return f.BaseFeature.Init(ctx)
}

func (f *stubFeature) Routes() []Route {
	return f.routes
}

func TestRegistry(t *testing.T) {
	logger := NewLogger()
	registry := NewRegistry(logger)

	enabled := &stubFeature{
		BaseFeature: NewBaseFeature("enabled", "An enabled feature", true, logger, nil),
		routes: []Route{
			{Method: "GET", Path: "/enabled", Handler: func(w http.ResponseWriter, r *http.Request) {}},
		},
	}
	disabled := &stubFeature{
		BaseFeature: NewBaseFeature("disabled", "A disabled feature", false, logger, nil),
		routes: []Route{
			{Method: "GET", Path: "/disabled", Handler: func(w http.ResponseWriter, r *http.Request) {}},
		},
	}

	if err := registry.Register(enabled); err != nil {
		t.Fatalf("Failed to register feature: %v", err)
	}
	if err := registry.Register(disabled); err != nil {
		t.Fatalf("Failed to register feature: %v", err)
	}

	// Duplicate registration is refused
	if err := registry.Register(enabled); err == nil {
		t.Error("Expected duplicate registration to fail")
	}

	// Only enabled features initialize and contribute routes
	if err := registry.InitAll(context.Background()); err != nil {
		t.Fatalf("Failed to init features: %v", err)
	}
	if enabled.inits != 1 {
		t.Errorf("Expected the enabled feature to init once, got %d", enabled.inits)
	}
	if disabled.inits != 0 {
		t.Errorf("Expected the disabled feature to stay uninitialized, got %d", disabled.inits)
	}

	routes := registry.GetAllRoutes()
	if len(routes) != 1 {
		t.Fatalf("Expected 1 route, got %d", len(routes))
	}
	if routes[0].Path != "/enabled" {
		t.Errorf("Expected the enabled feature's route, got %s", routes[0].Path)
	}

	// Status covers every registered feature
	status := registry.GetFeatureStatus()
	if len(status) != 2 {
		t.Fatalf("Expected status for 2 features, got %d", len(status))
	}
	if !status["enabled"].Enabled {
		t.Error("Expected the enabled feature to report enabled")
	}
	if status["disabled"].Enabled {
		t.Error("Expected the disabled feature to report disabled")
	}
}
