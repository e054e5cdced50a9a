package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/salinity-service/internal/i18n"
	"github.com/guttosm/salinity-service/internal/metrics"
)

// RateLimiter keeps one token bucket per caller. Each bucket holds requests
// tokens and refills at requests per window, so a caller may burst up to the
// limit and then proceeds at the sustained rate.
type RateLimiter struct {
	requests int
	every    rate.Limit
	idle     time.Duration
	now      func() time.Time

	mu        sync.Mutex
	callers   map[string]*caller
	lastSweep time.Time
}

type caller struct {
	bucket *rate.Limiter
	seen   time.Time
}

// NewRateLimiter allows requests per window for each caller. A non-positive
// window means one minute.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	requests = max(requests, 1)
	return &RateLimiter{
		requests: requests,
		every:    rate.Limit(float64(requests) / window.Seconds()),
		idle:     window,
		now:      time.Now,
		callers:  make(map[string]*caller),
	}
}

// take spends one token for id. When the bucket is empty it reports how long
// until the next token is available.
func (rl *RateLimiter) take(id string) (ok bool, remaining int, retry time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= rl.idle {
		rl.sweep(now)
	}
	cl, found := rl.callers[id]
	if !found {
		cl = &caller{bucket: rate.NewLimiter(rl.every, rl.requests)}
		rl.callers[id] = cl
	}
	cl.seen = now

	r := cl.bucket.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, 0, delay
	}
	return true, int(math.Max(0, cl.bucket.TokensAt(now))), 0
}

// sweep forgets callers idle for a full window; their buckets have refilled,
// so a new bucket behaves the same. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for id, cl := range rl.callers {
		if now.Sub(cl.seen) >= rl.idle {
			delete(rl.callers, id)
		}
	}
	rl.lastSweep = now
}

// Tracked returns the number of callers with a live bucket.
func (rl *RateLimiter) Tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.callers)
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit("ip", func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// ClientRateLimit limits requests per API key, falling back to the client IP
// when the request carries no validated key.
func (rl *RateLimiter) ClientRateLimit() gin.HandlerFunc {
	return rl.limit("client", func(c *gin.Context) string {
		if id := GetAPIKeyID(c); id != "" {
			return "key:" + id
		}
		return "ip:" + c.ClientIP()
	})
}

func (rl *RateLimiter) limit(scope string, identify func(*gin.Context) string) gin.HandlerFunc {
	limit := strconv.Itoa(rl.requests)
	return func(c *gin.Context) {
		ok, remaining, retry := rl.take(identify(c))

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !ok {
			c.Header("Retry-After", strconv.Itoa(max(int(math.Ceil(retry.Seconds())), 1)))
			metrics.RecordRateLimited(scope)
			Abort(c, http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded)
			return
		}
		c.Next()
	}
}
