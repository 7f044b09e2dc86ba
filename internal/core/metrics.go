package core

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcome label values.
const (
	FetchOutcomeOK         = "ok"
	FetchOutcomeTransport  = "transport_error"
	FetchOutcomeBadStatus  = "bad_status"
	FetchOutcomeBadPayload = "bad_payload"
)

// Metrics collects operational metrics for the Skylight portal
type Metrics struct {
	registry *prometheus.Registry

	FetchesTotal   *prometheus.CounterVec
	FetchDuration  *prometheus.HistogramVec
	EntriesLoaded  prometheus.Counter
	EntriesDropped *prometheus.CounterVec
}

// NewMetrics creates a metrics collection backed by its own registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		FetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skylight",
			Name:      "fetches_total",
			Help:      "Upstream fetch attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skylight",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream fetch duration by source.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		EntriesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skylight",
			Name:      "entries_loaded_total",
			Help:      "Entries accepted from upstream payloads.",
		}),
		EntriesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skylight",
			Name:      "entries_dropped_total",
			Help:      "Entries discarded from upstream payloads by reason.",
		}, []string{"reason"}),
	}

	registry.MustRegister(
		m.FetchesTotal,
		m.FetchDuration,
		m.EntriesLoaded,
		m.EntriesDropped,
	)

	return m
}

// Handler returns the HTTP handler serving the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
