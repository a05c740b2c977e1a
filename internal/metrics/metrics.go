// Package metrics holds the Prometheus collectors for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreErrors     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Tests pass a
// fresh prometheus.NewRegistry() so repeated construction does not panic.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "simverify_http_requests_total",
			Help: "HTTP requests handled, by route, method and status code",
		}, []string{"route", "method", "code"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "simverify_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		StoreErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "simverify_store_errors_total",
			Help: "Store operations that returned an error",
		}, []string{"operation"}),
	}
}

// IncStoreError counts a failed store operation.
func (m *Metrics) IncStoreError(operation string) {
	m.StoreErrors.WithLabelValues(operation).Inc()
}
