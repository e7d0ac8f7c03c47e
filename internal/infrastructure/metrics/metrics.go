// Package metrics provides Prometheus metrics for the chat server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveStreams tracks the number of in-flight response streams.
	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kbchat_active_streams",
			Help: "Number of currently active response streams",
		},
	)

	// TurnsStarted tracks the total number of chat turns started.
	TurnsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kbchat_turns_started_total",
			Help: "Total number of chat turns started",
		},
	)

	// TurnsCompleted tracks the total number of chat turns that produced
	// a persisted assistant message.
	TurnsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kbchat_turns_completed_total",
			Help: "Total number of chat turns completed successfully",
		},
	)

	// TurnsFailed tracks chat turns that terminated with a stream error.
	TurnsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kbchat_turns_failed_total",
			Help: "Total number of chat turns that failed",
		},
	)

	// TurnDuration tracks end-to-end chat turn duration.
	TurnDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kbchat_turn_duration_seconds",
			Help:    "End-to-end duration of chat turns",
			Buckets: prometheus.DefBuckets,
		},
	)

	// HTTPRequests tracks requests by method, endpoint and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbchat_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and endpoint.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kbchat_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// StoreOps tracks thread store operations by kind.
	StoreOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbchat_store_operations_total",
			Help: "Total number of thread store operations",
		},
		[]string{"operation"},
	)

	// PlatformSearchDuration tracks vector store search latency.
	PlatformSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kbchat_platform_search_duration_seconds",
			Help:    "Duration of external platform vector store searches",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, endpoint, status string, seconds float64) {
	HTTPRequests.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

// RecordStoreOp increments the store operation counter.
func RecordStoreOp(operation string) {
	StoreOps.WithLabelValues(operation).Inc()
}

// RecordTurnStarted increments turn start metrics.
func RecordTurnStarted() {
	TurnsStarted.Inc()
	ActiveStreams.Inc()
}

// RecordTurnCompleted increments completion metrics.
func RecordTurnCompleted(seconds float64) {
	TurnsCompleted.Inc()
	ActiveStreams.Dec()
	TurnDuration.Observe(seconds)
}

// RecordTurnFailed increments failure metrics.
func RecordTurnFailed(seconds float64) {
	TurnsFailed.Inc()
	ActiveStreams.Dec()
	TurnDuration.Observe(seconds)
}
