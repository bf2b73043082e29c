package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feedback-API metrics, exposed on /metrics.
var (
	// Submission counter, labelled by outcome (accepted, rejected,
	// store_error).
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedback",
			Subsystem: "api",
			Name:      "submissions_total",
			Help:      "Total feedback submissions by outcome",
		},
		[]string{"outcome"},
	)

	// Generation call counter, labelled by field and terminal state.
	GenerationCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedback",
			Subsystem: "api",
			Name:      "generation_calls_total",
			Help:      "Content generation calls by field and terminal state",
		},
		[]string{"field", "state"},
	)

	// Generation duration histogram, including retries and backoff.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "feedback",
			Subsystem: "api",
			Name:      "generation_duration_seconds",
			Help:      "Wall time per generated field, retries included",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"field"},
	)

	// Store query duration.
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "feedback",
			Subsystem: "api",
			Name:      "store_query_duration_seconds",
			Help:      "Feedback store operation duration",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	// Store read failures swallowed into the empty-collection state.
	StoreReadFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "feedback",
			Subsystem: "api",
			Name:      "store_read_failures_total",
			Help:      "Store reads degraded to an empty collection",
		},
	)

	// Dashboard snapshot refreshes, labelled by outcome.
	SnapshotRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedback",
			Subsystem: "api",
			Name:      "snapshot_refreshes_total",
			Help:      "Background dashboard snapshot refreshes",
		},
		[]string{"outcome"},
	)
)
