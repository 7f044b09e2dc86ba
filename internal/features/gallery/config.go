package gallery

import (
	"fmt"
	"time"

	"skylight/internal/core"
	"skylight/internal/features/gallery/services"
)

// Config represents gallery feature configuration
type Config struct {
	Enabled      bool
	Source       string
	FeedURL      string
	APODBaseURL  string
	APODAPIKey   string
	APODThumbs   bool
	FetchTimeout int
	UserAgent    string
}

// NewConfig creates gallery config from core config
func NewConfig(coreConfig *core.Config) *Config {
	return &Config{
		Enabled:      coreConfig.Features.Gallery.Enabled,
		Source:       coreConfig.Features.Gallery.Source,
		FeedURL:      coreConfig.Features.Gallery.FeedURL,
		APODBaseURL:  coreConfig.Features.Gallery.APODBaseURL,
		APODAPIKey:   coreConfig.Features.Gallery.APODAPIKey,
		APODThumbs:   coreConfig.Features.Gallery.APODThumbs,
		FetchTimeout: coreConfig.Features.Gallery.FetchTimeout,
		UserAgent:    coreConfig.Features.Gallery.UserAgent,
	}
}

// Validate validates the gallery configuration
func (c *Config) Validate() error {
	switch c.Source {
	case core.GallerySourceFeed:
		if c.FeedURL == "" {
			return fmt.Errorf("feed URL is required for the static feed source")
		}
	case core.GallerySourceAPOD:
		if c.APODBaseURL == "" {
			return fmt.Errorf("base URL is required for the APOD source")
		}
		if c.APODAPIKey == "" {
			return fmt.Errorf("API key is required for the APOD source")
		}
	default:
		return fmt.Errorf("unknown gallery source: %s", c.Source)
	}

	if c.FetchTimeout < 1 || c.FetchTimeout > 120 {
		return fmt.Errorf("fetch timeout must be between 1 and 120 seconds")
	}

	return nil
}

// SourceConfig converts the feature config into the services source config
func (c *Config) SourceConfig() *services.SourceConfig {
	return &services.SourceConfig{
		Source:      c.Source,
		FeedURL:     c.FeedURL,
		APODBaseURL: c.APODBaseURL,
		APODAPIKey:  c.APODAPIKey,
		APODThumbs:  c.APODThumbs,
		Timeout:     time.Duration(c.FetchTimeout) * time.Second,
		UserAgent:   c.UserAgent,
	}
}
