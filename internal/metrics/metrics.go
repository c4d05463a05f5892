// Package metrics holds the Prometheus collectors of the service. All
// collectors register with the default registry, which /metrics serves.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Engagement
	EngagementToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_toggles_total",
			Help: "Like and subscription toggles by edge kind and outcome",
		},
		[]string{"kind", "result"}, // result: created, removed, conflict, error
	)

	// Feeds
	FeedComposeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_compose_duration_seconds",
			Help:    "Time to compose one page of a feed, store scan and joins included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"feed"},
	)

	JoinBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "join_batches_total",
			Help: "Batched join queries issued by the join resolver",
		},
		[]string{"join"},
	)

	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "HTTP requests currently being served",
		},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Requests rejected by a rate limiter",
		},
		[]string{"limiter"}, // "ip", "user"
	)

	// Media store
	MediaOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_operations_total",
			Help: "Object storage operations by kind and outcome",
		},
		[]string{"operation", "result"},
	)

	MediaBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_circuit_breaker_state",
			Help: "Media store circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// ObserveFeed records the duration of one feed composition.
func ObserveFeed(feed string, start time.Time) {
	FeedComposeDuration.WithLabelValues(feed).Observe(time.Since(start).Seconds())
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
