package httpapi

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter is a fixed-window counter per client key.
type RateLimiter struct {
	window     time.Duration
	limit      int
	trustProxy bool
	now        func() time.Time

	mu        sync.Mutex
	clients   map[string]*windowCounter
	lastSweep time.Time
}

type windowCounter struct {
	start time.Time
	count int
}

// RateDecision is the outcome of one Allow call.
type RateDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Duration
}

// RateLimiterOption tunes a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxyHeaders keys clients on proxy headers such as
// X-Forwarded-For. Only enable it behind a proxy that overwrites them.
func WithTrustedProxyHeaders(trusted bool) RateLimiterOption {
	return func(l *RateLimiter) {
		l.trustProxy = trusted
	}
}

func NewRateLimiter(window time.Duration, limit int, opts ...RateLimiterOption) *RateLimiter {
	if window <= 0 {
		window = 15 * time.Minute
	}
	if limit <= 0 {
		limit = 100
	}
	limiter := &RateLimiter{
		window:  window,
		limit:   limit,
		now:     time.Now,
		clients: make(map[string]*windowCounter),
	}
	for _, opt := range opts {
		opt(limiter)
	}
	return limiter
}

// clientKey is the socket peer unless proxy headers are trusted.
func (l *RateLimiter) clientKey(r *http.Request) string {
	if l.trustProxy {
		return resolveClientIP(r)
	}
	return remoteIP(r)
}

func (l *RateLimiter) Allow(key string) RateDecision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	counter, ok := l.clients[key]
	if !ok || now.Sub(counter.start) >= l.window {
		counter = &windowCounter{start: now}
		l.clients[key] = counter
	}
	counter.count++

	remaining := l.limit - counter.count
	if remaining < 0 {
		remaining = 0
	}
	return RateDecision{
		Allowed:   counter.count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		Reset:     counter.start.Add(l.window).Sub(now),
	}
}

// sweep drops expired windows at most once per window.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, counter := range l.clients {
		if now.Sub(counter.start) >= l.window {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// RateLimit throttles requests under prefix per client IP. An empty prefix
// throttles every route.
func (h *Handler) RateLimit(limiter *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter == nil || !underPrefix(r.URL.Path, h.prefix) || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		decision := limiter.Allow(limiter.clientKey(r))
		resetSeconds := int(math.Ceil(decision.Reset.Seconds()))
		header := w.Header()
		header.Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
		header.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		header.Set("RateLimit-Reset", strconv.Itoa(resetSeconds))

		if !decision.Allowed {
			header.Set("Retry-After", strconv.Itoa(resetSeconds))
			h.writeCode(r.Context(), w, http.StatusTooManyRequests, codeRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func underPrefix(path, prefix string) bool {
	if prefix == "" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
