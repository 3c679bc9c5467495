package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weather_dashboard"

var (
	// Fetch cycle metrics
	fetchCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_cycles_total",
			Help:      "Total number of completed fetch cycles by outcome",
		},
		[]string{"outcome"},
	)

	fetchCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_cycle_duration_seconds",
			Help:      "Duration of a fetch cycle (current weather plus forecast)",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"outcome"},
	)

	staleResultsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_results_total",
			Help:      "Results discarded because a newer fetch cycle was started",
		},
	)

	// Upstream metrics
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of requests sent to the weather provider",
		},
		[]string{"endpoint", "status"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Weather provider request duration in seconds",
			Buckets:   []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)
)

// Cycle outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// RecordFetchCycle records a fetch cycle that was applied to the dashboard
func RecordFetchCycle(outcome string, duration time.Duration) {
	fetchCyclesTotal.WithLabelValues(outcome).Inc()
	fetchCycleDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordStaleResult records a result dropped because its cycle was superseded
func RecordStaleResult() {
	staleResultsTotal.Inc()
}

// RecordUpstreamRequest records one call to the weather provider.
// A status of 0 means the request never produced a response.
func RecordUpstreamRequest(endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	upstreamRequestsTotal.WithLabelValues(endpoint, label).Inc()
	upstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}
