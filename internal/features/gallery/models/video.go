package models

import (
	"net/url"
	"strings"
)

// Video providers recognised for inline playback
const (
	ProviderYouTube = "youtube"
	ProviderVimeo   = "vimeo"
)

// VideoEmbed identifies a recognised video host and its playable ID
type VideoEmbed struct {
	Provider string `json:"provider"`
	ID       string `json:"id"`
}

// EmbedURL returns the player URL for the embed
func (v VideoEmbed) EmbedURL() string {
	switch v.Provider {
	case ProviderYouTube:
		return "https://www.youtube-nocookie.com/embed/" + v.ID
	case ProviderVimeo:
		return "https://player.vimeo.com/video/" + v.ID
	default:
		return ""
	}
}

// EmbedForURL recognises the video-hosting URL shapes daily-image feeds
// link to and extracts the playable identifier. Unrecognised hosts report
// false and render as plain links instead.
func EmbedForURL(rawURL string) (VideoEmbed, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return VideoEmbed{}, false
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtube.com", "youtube-nocookie.com":
		if id := youtubeID(u); id != "" {
			return VideoEmbed{Provider: ProviderYouTube, ID: id}, true
		}
	case "youtu.be":
		if id := firstSegment(u.Path); id != "" {
			return VideoEmbed{Provider: ProviderYouTube, ID: id}, true
		}
	case "vimeo.com":
		if id := firstSegment(u.Path); isDigits(id) {
			return VideoEmbed{Provider: ProviderVimeo, ID: id}, true
		}
	case "player.vimeo.com":
		path := strings.Trim(u.Path, "/")
		if strings.HasPrefix(path, "video/") {
			if id := firstSegment(strings.TrimPrefix(path, "video/")); isDigits(id) {
				return VideoEmbed{Provider: ProviderVimeo, ID: id}, true
			}
		}
	}

	return VideoEmbed{}, false
}

// youtubeID extracts the video ID from full youtube.com URL shapes
func youtubeID(u *url.URL) string {
	path := strings.Trim(u.Path, "/")
	if path == "watch" {
		return u.Query().Get("v")
	}
	if strings.HasPrefix(path, "embed/") {
		return firstSegment(strings.TrimPrefix(path, "embed/"))
	}
	return ""
}

// firstSegment returns the first path segment without surrounding slashes
func firstSegment(path string) string {
	trimmed := strings.Trim(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
