// internal/metrics/metrics.go
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Slot outcomes for a requested comparison product.
const (
	OutcomeResolved = "resolved"
	OutcomeNotFound = "not_found"
	OutcomeTimeout  = "timeout"
	OutcomeError    = "error"
)

// Metrics records HTTP and catalog aggregation metrics. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	comparisonSlots  *prometheus.CounterVec
	relationFailures *prometheus.CounterVec
	enrichDuration   prometheus.Histogram
}

// New registers the collectors on reg. A nil registerer yields a no-op Metrics.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		comparisonSlots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_comparison_slots_total",
			Help: "Requested comparison products by outcome.",
		}, []string{"outcome"}),
		relationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_relation_fetch_failures_total",
			Help: "Related collection fetches that failed and were treated as empty.",
		}, []string{"relation"}),
		enrichDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_enrich_duration_seconds",
			Help:    "Time spent enriching a single product.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.requests, m.requestDuration, m.comparisonSlots, m.relationFailures, m.enrichDuration)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveComparisonSlot(outcome string) {
	if m == nil {
		return
	}
	m.comparisonSlots.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncRelationFailure(relation string) {
	if m == nil {
		return
	}
	m.relationFailures.WithLabelValues(relation).Inc()
}

func (m *Metrics) ObserveEnrich(duration time.Duration) {
	if m == nil {
		return
	}
	m.enrichDuration.Observe(duration.Seconds())
}
