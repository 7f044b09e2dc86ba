package services

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
)

// FeedSource loads entries from a static JSON feed
type FeedSource struct {
	client *http.Client
	logger *core.Logger
	config *SourceConfig
}

// NewFeedSource creates a new static feed source
func NewFeedSource(logger *core.Logger, client *http.Client, config *SourceConfig) *FeedSource {
	return &FeedSource{
		client: client,
		logger: logger,
		config: config,
	}
}

// Name identifies the source in logs and metrics
func (s *FeedSource) Name() string {
	return core.GallerySourceFeed
}

// Fetch retrieves the whole feed. Static feeds are not windowed upstream;
// the reconciler filters the result down to the requested days.
func (s *FeedSource) Fetch(ctx context.Context, _ models.Window) ([]models.Entry, error) {
	// Create request with context
	req, err := http.NewRequestWithContext(ctx, "GET", s.config.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	// Make request
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
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

	s.logger.Info("Successfully fetched feed", "url", s.config.FeedURL, "entries", len(entries))
	return entries, nil
}
