package models

// State identifies where the gallery is in its load cycle
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateError
)

// String returns the state's name for logs and API responses
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// GalleryItem pairs a reconciled entry with its rendering hints.
// Embed is nil unless the entry links to a recognised video host.
type GalleryItem struct {
	Entry Entry       `json:"entry"`
	Embed *VideoEmbed `json:"embed,omitempty"`
}

// GalleryView is everything the gallery page needs to render one window
type GalleryView struct {
	Window Window
	Items  []GalleryItem
	Loaded int
	State  State
}

// NewGalleryView assembles the view model for a reconciled window
func NewGalleryView(window Window, entries []Entry, loaded int) GalleryView {
	items := make([]GalleryItem, 0, len(entries))
	for _, entry := range entries {
		item := GalleryItem{Entry: entry}
		if entry.IsVideo() {
			if embed, ok := EmbedForURL(entry.URL); ok {
				item.Embed = &embed
			}
		}
		items = append(items, item)
	}

	return GalleryView{
		Window: window,
		Items:  items,
		Loaded: loaded,
	}
}
