package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/vidstream-backend/internal/metrics"
)

// Metrics records request latency by chi route pattern, so /videos/{videoID}
// is one series regardless of the ID.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			metrics.ObserveHTTP(r.Method, routePattern(r), sw.status, time.Since(start))
		})
	}
}
