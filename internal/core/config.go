package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config represents the main configuration for Skylight
type Config struct {
	Server   ServerConfig  `json:"server"`
	Features FeatureConfig `json:"features"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// FeatureConfig contains feature-specific configuration
type FeatureConfig struct {
	Gallery GalleryConfig `json:"gallery"`
}

// GalleryConfig contains daily-image gallery configuration
type GalleryConfig struct {
	Enabled      bool   `json:"enabled"`
	Source       string `json:"source"`
	FeedURL      string `json:"feed_url"`
	APODBaseURL  string `json:"apod_base_url"`
	APODAPIKey   string `json:"apod_api_key"`
	APODThumbs   bool   `json:"apod_thumbs"`
	FetchTimeout int    `json:"fetch_timeout"`
	UserAgent    string `json:"user_agent"`
}

// Gallery source names accepted by SKY_GALLERY_SOURCE.
const (
	GallerySourceFeed = "feed"
	GallerySourceAPOD = "apod"
)

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("SKY_PORT", 4000),
			Host: getEnvOrDefault("SKY_HOST", "0.0.0.0"),
		},
		Features: FeatureConfig{
			Gallery: GalleryConfig{
				Enabled:      getEnvAsBool("SKY_ENABLE_GALLERY", true),
				Source:       getEnvOrDefault("SKY_GALLERY_SOURCE", GallerySourceFeed),
				FeedURL:      getEnvOrDefault("SKY_FEED_URL", ""),
				APODBaseURL:  getEnvOrDefault("SKY_APOD_BASE_URL", "https://api.nasa.gov/planetary/apod"),
				APODAPIKey:   getEnvOrDefault("SKY_APOD_API_KEY", "DEMO_KEY"),
				APODThumbs:   getEnvAsBool("SKY_APOD_THUMBS", true),
				FetchTimeout: getEnvAsInt("SKY_FETCH_TIMEOUT", 10),
				UserAgent:    getEnvOrDefault("SKY_USER_AGENT", "skylight/1.0"),
			},
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Validate gallery config if enabled
	if c.Features.Gallery.Enabled {
		switch c.Features.Gallery.Source {
		case GallerySourceFeed:
			if c.Features.Gallery.FeedURL == "" {
				return fmt.Errorf("feed URL is required when the static feed source is selected")
			}
		case GallerySourceAPOD:
			if c.Features.Gallery.APODBaseURL == "" {
				return fmt.Errorf("APOD base URL is required when the APOD source is selected")
			}
			if c.Features.Gallery.APODAPIKey == "" {
				return fmt.Errorf("APOD API key is required when the APOD source is selected")
			}
		default:
			return fmt.Errorf("unknown gallery source: %s", c.Features.Gallery.Source)
		}

		if c.Features.Gallery.FetchTimeout <= 0 {
			return fmt.Errorf("fetch timeout must be positive: %d", c.Features.Gallery.FetchTimeout)
		}
	}

	return nil
}

// GetFeatureConfig returns configuration for a specific feature
func (c *Config) GetFeatureConfig(featureName string) interface{} {
	switch strings.ToLower(featureName) {
	case "gallery":
		return c.Features.Gallery
	default:
		return nil
	}
}

// IsFeatureEnabled checks if a feature is enabled
func (c *Config) IsFeatureEnabled(featureName string) bool {
	switch strings.ToLower(featureName) {
	case "gallery":
		return c.Features.Gallery.Enabled
	default:
		return false
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}
