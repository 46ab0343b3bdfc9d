package middleware

import (
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// reclaimProbability is the chance that a call to Allow also sweeps
// expired windows, bounding table growth without a background goroutine.
const reclaimProbability = 0.1

// Result is the outcome of one admission check. A denied result is a
// normal outcome, not an error.
type Result struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

type window struct {
	count     int
	resetTime time.Time
}

// WindowStore owns the per-caller fixed windows. State is process-local:
// behind a load balancer each instance counts independently, so limits
// become approximate under horizontal scale-out.
type WindowStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

// NewWindowStore creates an empty window table.
func NewWindowStore() *WindowStore {
	return &WindowStore{
		windows: make(map[string]*window),
	}
}

// Len returns the number of tracked windows.
func (s *WindowStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// FixedWindowLimiter counts requests per caller in non-sliding windows.
// Limits are parameterized per call site, not fixed globally.
type FixedWindowLimiter struct {
	store *WindowStore
	now   func() time.Time
}

// NewFixedWindowLimiter creates a limiter over the given window table.
func NewFixedWindowLimiter(store *WindowStore) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		store: store,
		now:   time.Now,
	}
}

// Allow admits or denies one request from key under the given limit. A new
// window starts when none exists or the previous one has expired; within a
// window the counter increments until maxRequests is reached, after which
// requests are denied with the reset time unchanged.
func (l *FixedWindowLimiter) Allow(key string, maxRequests int, windowSize time.Duration) Result {
	now := l.now()

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	if rand.Float64() < reclaimProbability {
		l.reclaimLocked(now)
	}

	w, exists := l.store.windows[key]
	if !exists || !now.Before(w.resetTime) {
		w = &window{count: 1, resetTime: now.Add(windowSize)}
		l.store.windows[key] = w
		return Result{Allowed: true, Remaining: maxRequests - 1, ResetTime: w.resetTime}
	}

	if w.count < maxRequests {
		w.count++
		return Result{Allowed: true, Remaining: maxRequests - w.count, ResetTime: w.resetTime}
	}

	return Result{Allowed: false, Remaining: 0, ResetTime: w.resetTime}
}

// ReclaimExpired removes windows whose reset time has passed and returns
// how many were dropped. Unexpired windows are never evicted.
func (l *FixedWindowLimiter) ReclaimExpired() int {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.reclaimLocked(l.now())
}

func (l *FixedWindowLimiter) reclaimLocked(now time.Time) int {
	removed := 0
	for key, w := range l.store.windows {
		if !now.Before(w.resetTime) {
			delete(l.store.windows, key)
			removed++
		}
	}
	return removed
}

// RateLimit returns a gin middleware enforcing the given per-client limit.
// Different routes pass different (maxRequests, window) pairs.
func RateLimit(limiter *FixedWindowLimiter, maxRequests int, windowSize time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + GetClientIP(c)
		result := limiter.Allow(key, maxRequests, windowSize)

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(time.Until(result.ResetTime).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
