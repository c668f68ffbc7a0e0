// Package metrics provides Prometheus metrics for the wiki lookup server.
// It tracks tool calls, upstream API latency and lookup outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wikilookup"
)

var (
	// RequestsTotal counts total tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// UpstreamLatency measures upstream API call latency by service and action
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upstream_latency_seconds",
		Help:      "Upstream API call latency by service and action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "action"})

	// UpstreamRequestsTotal counts upstream API requests
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_requests_total",
		Help:      "Total upstream API requests by service, action and status",
	}, []string{"service", "action", "status"})

	// UpstreamErrors counts upstream API errors by error code
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_errors_total",
		Help:      "Upstream API errors by service, action and error code",
	}, []string{"service", "action", "error_code"})

	// LookupResults counts lookup outcomes (ok, empty, failed) by operation
	LookupResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "lookup_results_total",
		Help:      "Lookup outcomes by operation and status",
	}, []string{"operation", "status"})

	// ResultRows tracks the number of rows a lookup produced
	ResultRows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "result_rows",
		Help:      "Rows returned per lookup",
		Buckets:   []float64{0, 1, 5, 10, 50, 100, 250, 500},
	}, []string{"operation"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	RequestsTotal.WithLabelValues(tool, statusLabel(success)).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records an upstream API call
func RecordAPICall(service, action string, duration float64, success bool, errorCode string) {
	UpstreamRequestsTotal.WithLabelValues(service, action, statusLabel(success)).Inc()
	UpstreamLatency.WithLabelValues(service, action).Observe(duration)
	if errorCode != "" {
		UpstreamErrors.WithLabelValues(service, action, errorCode).Inc()
	}
}

// RecordLookup records the outcome of one lookup operation
func RecordLookup(operation, status string, rows int) {
	LookupResults.WithLabelValues(operation, status).Inc()
	ResultRows.WithLabelValues(operation).Observe(float64(rows))
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
