package services

import (
	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
)

// Reconciler projects loaded entries onto a window of days
type Reconciler struct {
	logger *core.Logger
}

// NewReconciler creates a new reconciler
func NewReconciler(logger *core.Logger) *Reconciler {
	return &Reconciler{
		logger: logger,
	}
}

// Reconcile walks the window's days in order and keeps the entry for each
// day the feed covered, skipping days it did not. When a payload repeats a
// date the later entry wins. The result never exceeds the window size and
// contains no placeholders.
func (r *Reconciler) Reconcile(window models.Window, entries []models.Entry) []models.Entry {
	lookup := make(map[string]models.Entry, len(entries))
	for _, entry := range entries {
		lookup[entry.Date] = entry
	}

	matched := make([]models.Entry, 0, models.WindowSize)
	for _, date := range window.Dates() {
		if entry, ok := lookup[date]; ok {
			matched = append(matched, entry)
		}
	}

	r.logger.Info("Reconciled window", "start", window.StartDate(), "end", window.EndDate(), "loaded", len(entries), "matched", len(matched))
	return matched
}
