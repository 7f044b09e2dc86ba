package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-day format used throughout the gallery
const DateLayout = "2006-01-02"

// Media types reported by daily-image feeds
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Entry represents a single dated item from a daily-image feed
type Entry struct {
	Date         string `json:"date"`
	Title        string `json:"title"`
	Explanation  string `json:"explanation"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl,omitempty"`
	MediaType    string `json:"media_type"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Copyright    string `json:"copyright,omitempty"`
}

// IsVideo reports whether the entry points at a video rather than an image
func (e Entry) IsVideo() bool {
	return e.MediaType == MediaTypeVideo
}

// PreviewURL returns the image to show in the thumbnail grid.
// Video entries use their thumbnail when the feed provided one.
func (e Entry) PreviewURL() string {
	if e.IsVideo() && e.ThumbnailURL != "" {
		return e.ThumbnailURL
	}
	if e.IsVideo() {
		return ""
	}
	return e.URL
}

// FullImageURL returns the best image available for the detail view
func (e Entry) FullImageURL() string {
	if e.HDURL != "" {
		return e.HDURL
	}
	return e.URL
}

// parseDate parses a feed date using the formats daily-image feeds emit
func parseDate(dateStr string) (time.Time, error) {
	// Canonical format first, then common timestamp variants
	formats := []string{
		DateLayout,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006/01/02",
		"Jan 2, 2006",
	}

	trimmed := strings.TrimSpace(dateStr)
	for _, format := range formats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseDate parses a feed date and pins it to midnight UTC
func ParseDate(dateStr string) (time.Time, error) {
	t, err := parseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// NormalizeDate rewrites a feed date into the canonical calendar-day form
func NormalizeDate(dateStr string) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}
