// Package metrics registers the process-wide prometheus instruments,
// exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReadingsIngested counts readings committed to the store.
	ReadingsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "envmonitor_readings_ingested_total",
		Help: "Number of sensor readings persisted.",
	})

	// LivePushes counts readings pushed over the live channels (SSE + ws).
	LivePushes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "envmonitor_live_pushes_total",
		Help: "Number of readings pushed to live subscribers.",
	})

	// LiveSubscribers tracks currently connected live-feed clients.
	LiveSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "envmonitor_live_subscribers",
		Help: "Currently connected live-feed subscribers.",
	})

	// BulkFetches counts bulk snapshot requests (initial loads and polls).
	BulkFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "envmonitor_bulk_fetches_total",
		Help: "Number of bulk reading fetches served.",
	})
)
