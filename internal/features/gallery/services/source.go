package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
)

// Source loads raw gallery entries covering a window of days
type Source interface {
	// Name identifies the source in logs and metrics
	Name() string

	// Fetch retrieves the entries the source has for the window
	Fetch(ctx context.Context, window models.Window) ([]models.Entry, error)
}

// SourceConfig holds configuration shared by the gallery sources
type SourceConfig struct {
	Source      string
	FeedURL     string
	APODBaseURL string
	APODAPIKey  string
	APODThumbs  bool
	Timeout     time.Duration
	UserAgent   string
}

// Sentinel errors classifying upstream fetch failures
var (
	ErrUpstreamStatus      = errors.New("upstream returned a non-success status")
	ErrUpstreamPayload     = errors.New("upstream payload is not an entry array")
	ErrUpstreamUnavailable = errors.New("upstream fetch failed")
)

// NewSource selects the source implementation named by the configuration
func NewSource(logger *core.Logger, config *SourceConfig) (Source, error) {
	client := &http.Client{
		Timeout: config.Timeout,
	}

	switch config.Source {
	case core.GallerySourceFeed:
		return NewFeedSource(logger, client, config), nil
	case core.GallerySourceAPOD:
		return NewAPODSource(logger, client, config), nil
	default:
		return nil, fmt.Errorf("unknown gallery source: %s", config.Source)
	}
}

// decodeEntries parses an upstream payload as a JSON entry array
func decodeEntries(body []byte) ([]models.Entry, error) {
	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamPayload, err)
	}
	return entries, nil
}
