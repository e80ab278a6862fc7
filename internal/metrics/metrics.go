// Package metrics holds the Prometheus collectors of the click pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes
const (
	ResultOK           = "ok"
	ResultNotFound     = "not_found"
	ResultGone         = "gone"
	ResultUnauthorized = "unauthorized"
	ResultUnavailable  = "unavailable"
)

var (
	// Redirect resolutions partitioned by outcome
	Resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpulse_resolutions_total",
			Help: "Redirect resolutions by outcome",
		},
		[]string{"result"},
	)

	// Resolution cache lookups partitioned by hit, miss or error
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpulse_cache_lookups_total",
			Help: "Resolution cache lookups by outcome",
		},
		[]string{"result"},
	)

	// Click events handed to the queue partitioned by ok, dropped or failed
	EventsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpulse_events_enqueued_total",
			Help: "Click events published by the dispatcher by outcome",
		},
		[]string{"result"},
	)

	// Click events consumed by the worker pool partitioned by outcome
	EventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpulse_events_processed_total",
			Help: "Click events handled by workers by outcome",
		},
		[]string{"result"},
	)

	// Time spent enriching and persisting one click event
	ProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linkpulse_event_processing_seconds",
			Help:    "Click event processing latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Rollup recomputes that exhausted their retries
	AggregationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "linkpulse_aggregation_failures_total",
			Help: "Rollup recomputes marked for repair after exhausting retries",
		},
	)

	// Events currently being processed
	InFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "linkpulse_events_inflight",
			Help: "Click events currently being processed",
		},
	)
)
