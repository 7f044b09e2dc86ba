package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
)

// APODSource loads entries from an astronomy-picture-of-the-day API.
// The API is windowed upstream: the request carries the window bounds and
// the access key, and optionally asks for video thumbnails.
type APODSource struct {
	client *http.Client
	logger *core.Logger
	config *SourceConfig
}

// NewAPODSource creates a new APOD API source
func NewAPODSource(logger *core.Logger, client *http.Client, config *SourceConfig) *APODSource {
	return &APODSource{
		client: client,
		logger: logger,
		config: config,
	}
}

// Name identifies the source in logs and metrics
func (s *APODSource) Name() string {
	return core.GallerySourceAPOD
}

// Fetch retrieves the entries the API has for the window
func (s *APODSource) Fetch(ctx context.Context, window models.Window) ([]models.Entry, error) {
	requestURL, err := s.buildURL(window)
	if err != nil {
		return nil, err
	}

	// Create request with context
	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	// Make request
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}
	defer resp.Body.Close()

	// Check response status
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Successfully fetched entries", "start", window.StartDate(), "end", window.EndDate(), "entries", len(entries))
	return entries, nil
}

// buildURL assembles the API request for the window
func (s *APODSource) buildURL(window models.Window) (string, error) {
	base, err := url.Parse(s.config.APODBaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid APOD base URL: %w", err)
	}

	query := base.Query()
	query.Set("api_key", s.config.APODAPIKey)
	query.Set("start_date", window.StartDate())
	query.Set("end_date", window.EndDate())
	if s.config.APODThumbs {
		query.Set("thumbs", "true")
	}
	base.RawQuery = query.Encode()

	return base.String(), nil
}
