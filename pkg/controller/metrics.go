package controller

import (
	"net/http"
	"strconv"
	"time"

	"backoffice/pkg/metrics"
)

// WithMetrics returns a middleware recording request counts, latencies and
// body sizes. Routes are labelled by the ServeMux pattern, so it must wrap
// the mux rather than be wrapped by it.
func WithMetrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.InFlight.Inc()
			defer m.InFlight.Dec()

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			rt := route(r)
			m.Requests.WithLabelValues(rt, r.Method, strconv.Itoa(rec.status)).Inc()
			m.Duration.WithLabelValues(rt, r.Method).Observe(time.Since(start).Seconds())
			if r.ContentLength > 0 {
				m.RequestBytes.WithLabelValues(rt).Observe(float64(r.ContentLength))
			}
		})
	}
}
