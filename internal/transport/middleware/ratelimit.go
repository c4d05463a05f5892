package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/httprate"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/vidstream-backend/internal/config"
	"github.com/heartmarshall/vidstream-backend/internal/metrics"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

// LimitByIP returns a sliding-window limiter of cfg.PerIPRequests per
// cfg.PerIPWindow for each client IP. A disabled config yields a no-op.
func LimitByIP(cfg config.RateLimitConfig) Middleware {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.PerIPRequests,
		cfg.PerIPWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			metrics.RateLimitRejections.WithLabelValues("ip").Inc()
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
		}),
	)
}

// UserLimiter keeps a token bucket per authenticated user.
type UserLimiter struct {
	limiters sync.Map // map[uuid.UUID]*userEntry
	limit    rate.Limit
	burst    int
	stop     chan struct{}
}

type userEntry struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewUserLimiter creates a limiter with background cleanup of idle users.
// Call Stop() on shutdown.
func NewUserLimiter(cfg config.RateLimitConfig, cleanupInterval time.Duration) *UserLimiter {
	ul := &UserLimiter{
		limit: rate.Limit(cfg.PerUserRate),
		burst: cfg.PerUserBurst,
		stop:  make(chan struct{}),
	}
	go ul.cleanup(cleanupInterval)
	return ul
}

// Stop terminates the background cleanup goroutine.
func (ul *UserLimiter) Stop() {
	close(ul.stop)
}

// Limit returns middleware that rate-limits authenticated requests per user.
// Anonymous requests pass through; they are covered by LimitByIP.
func (ul *UserLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			val, _ := ul.limiters.LoadOrStore(userID, &userEntry{
				limiter: rate.NewLimiter(ul.limit, ul.burst),
			})
			e := val.(*userEntry)
			e.mu.Lock()
			e.lastSeen = time.Now()
			e.mu.Unlock()

			if !e.limiter.Allow() {
				metrics.RateLimitRejections.WithLabelValues("user").Inc()
				retryAfter := 1
				if ul.limit > 0 {
					retryAfter = int(1/float64(ul.limit)) + 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (ul *UserLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ul.stop:
			return
		case <-ticker.C:
			now := time.Now()
			ul.limiters.Range(func(key, value any) bool {
				e := value.(*userEntry)
				e.mu.Lock()
				idle := now.Sub(e.lastSeen)
				e.mu.Unlock()
				if idle > 10*time.Minute {
					ul.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
