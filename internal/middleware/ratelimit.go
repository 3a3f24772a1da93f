package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mergington/activities/internal/model"
)

// RateLimiter implements fixed-window rate limiting per client key
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int           // Requests per window
	interval time.Duration // Window length
	stopChan chan struct{}
}

type window struct {
	count int
	start time.Time
}

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Limit    int           // Requests per window (default 100)
	Interval time.Duration // Window length (default 1 minute)
	Cleanup  time.Duration // Cleanup interval for stale windows (default 5 minutes)
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Limit == 0 {
		cfg.Limit = 100
	}
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	rl := &RateLimiter{
		windows:  make(map[string]*window),
		limit:    cfg.Limit,
		interval: cfg.Interval,
		stopChan: make(chan struct{}),
	}

	go rl.cleanupLoop(cfg.Cleanup)

	return rl
}

// Stop stops the rate limiter cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopChan:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.interval * 2)
	for key, w := range rl.windows {
		if w.start.Before(cutoff) {
			delete(rl.windows, key)
		}
	}
}

// Allow checks if a request is allowed for the given key
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetTime time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.windows[key]

	if !exists || now.Sub(w.start) >= rl.interval {
		w = &window{count: 0, start: now}
		rl.windows[key] = w
	}

	reset := w.start.Add(rl.interval)
	if w.count >= rl.limit {
		return false, 0, reset
	}

	w.count++
	return true, rl.limit - w.count, reset
}

// RateLimit returns a middleware that limits requests per client IP
func RateLimit(rl *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, remaining, reset := rl.Allow(key)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			if !allowed {
				retryAfter := int(time.Until(reset).Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
