// Package metrics holds the Prometheus collectors shared by the HTTP layer
// and the bucket layout reused by the OpenTelemetry instruments.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// SizeBuckets are byte buckets for request bodies, from 1KiB to 64MiB.
var SizeBuckets = prometheus.ExponentialBuckets(1024, 4, 9) //nolint: gochecknoglobals

// HTTP groups the request collectors of the API server.
type HTTP struct {
	Requests     *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	RequestBytes *prometheus.HistogramVec
	InFlight     prometheus.Gauge
}

// NewHTTP creates the request collectors and registers them on reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	m := &HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Handled HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "backoffice",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   DefaultBuckets,
		}, []string{"route", "method"}),
		RequestBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "backoffice",
			Subsystem: "http",
			Name:      "request_size_bytes",
			Help:      "Declared HTTP request body sizes by route.",
			Buckets:   SizeBuckets,
		}, []string{"route"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "backoffice",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Requests, m.Duration, m.RequestBytes, m.InFlight} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register http collector: %w", err)
		}
	}

	return m, nil
}
