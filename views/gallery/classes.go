package gallery

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"

	"skylight/internal/features/gallery/models"
)

// gridClasses resolves the grid layout for the current item count.
func gridClasses(count int) string {
	base := "grid grid-cols-2 gap-3 sm:grid-cols-3"
	if count == 0 {
		return twmerge.Merge(base, "hidden")
	}
	return twmerge.Merge(base, "grid-cols-3")
}

// tileClasses picks the tile treatment for the entry's media kind.
func tileClasses(item models.GalleryItem) string {
	base := "overflow-hidden rounded-lg bg-slate-900 shadow"
	if item.Entry.IsVideo() {
		return twmerge.Merge(base, "ring-1 ring-sky-500")
	}
	return base
}

func overlayID(item models.GalleryItem) string {
	return "entry-" + item.Entry.Date
}

func overlayHref(item models.GalleryItem) string {
	return "#" + overlayID(item)
}
