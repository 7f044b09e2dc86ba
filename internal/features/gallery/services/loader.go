package services

import (
	"context"
	"errors"
	"time"

	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
)

// Loader runs fetches against the configured source and applies the
// gallery's failure policy: a fetch that goes wrong yields an empty entry
// list, never an error. Entries whose dates cannot be normalized are
// dropped individually.
type Loader struct {
	source  Source
	logger  *core.Logger
	metrics *core.Metrics
}

// NewLoader creates a new loader around a source
func NewLoader(source Source, logger *core.Logger, metrics *core.Metrics) *Loader {
	return &Loader{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// Load fetches entries for the window. The boolean reports whether the
// fetch itself succeeded; either way the returned list is usable.
func (l *Loader) Load(ctx context.Context, window models.Window) ([]models.Entry, bool) {
	start := time.Now()
	entries, err := l.source.Fetch(ctx, window)
	l.metrics.FetchDuration.WithLabelValues(l.source.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		l.metrics.FetchesTotal.WithLabelValues(l.source.Name(), classifyFetchError(err)).Inc()
		l.logger.Error("Fetch failed, continuing with empty gallery", "source", l.source.Name(), "error", err)
		return []models.Entry{}, false
	}

	l.metrics.FetchesTotal.WithLabelValues(l.source.Name(), core.FetchOutcomeOK).Inc()

	// Normalize entry dates, dropping entries that carry none we understand
	accepted := make([]models.Entry, 0, len(entries))
	for _, entry := range entries {
		date, err := models.NormalizeDate(entry.Date)
		if err != nil {
			l.metrics.EntriesDropped.WithLabelValues("bad_date").Inc()
			l.logger.Warn("Dropping entry with unparseable date", "date", entry.Date, "title", entry.Title)
			continue
		}
		entry.Date = date
		accepted = append(accepted, entry)
	}

	l.metrics.EntriesLoaded.Add(float64(len(accepted)))
	l.logger.Info("Loaded entries", "source", l.source.Name(), "received", len(entries), "accepted", len(accepted))
	return accepted, true
}

// classifyFetchError maps a fetch failure onto a metrics outcome label
func classifyFetchError(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamStatus):
		return core.FetchOutcomeBadStatus
	case errors.Is(err, ErrUpstreamPayload):
		return core.FetchOutcomeBadPayload
	default:
		return core.FetchOutcomeTransport
	}
}
