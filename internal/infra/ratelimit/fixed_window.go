// Package ratelimit provides an in-process fixed-window rate limiter used
// to throttle order creation per customer email.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/Hritik000/valentine-gifts-hub/config"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/service"
)

// sweepThreshold bounds memory: once the tracking map grows past this many
// keys, expired windows are swept on the next Allow call.
const sweepThreshold = 1000

type window struct {
	count   int
	resetAt time.Time
}

// fixedWindowLimiter counts attempts per key inside a fixed time window.
// State is process-local; a multi-instance deployment would need a shared
// store behind the same interface.
type fixedWindowLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	maxAttempts int
	windowSize  time.Duration
	now         func() time.Time
}

// NewFixedWindowLimiter creates a limiter from the configured attempt
// budget and window length.
func NewFixedWindowLimiter(cfg *config.Config) service.RateLimiter {
	maxAttempts := 5
	windowSize := 10 * time.Minute
	if cfg.RateLimit != nil {
		if cfg.RateLimit.MaxAttempts > 0 {
			maxAttempts = cfg.RateLimit.MaxAttempts
		}
		if cfg.RateLimit.Window > 0 {
			windowSize = cfg.RateLimit.Window
		}
	}

	return &fixedWindowLimiter{
		windows:     make(map[string]*window),
		maxAttempts: maxAttempts,
		windowSize:  windowSize,
		now:         time.Now,
	}
}

// Allow records an attempt for key and reports whether it fits the window.
func (l *fixedWindowLimiter) Allow(_ context.Context, key string) (service.Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if len(l.windows) > sweepThreshold {
		l.sweep(now)
	}

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(l.windowSize)}
		l.windows[key] = w
	}

	if w.count >= l.maxAttempts {
		return service.Decision{
			Allowed: false,
			RetryIn: w.resetAt.Sub(now),
		}, nil
	}

	w.count++

	return service.Decision{
		Allowed:   true,
		Remaining: l.maxAttempts - w.count,
	}, nil
}

// sweep removes expired windows. Caller holds the mutex.
func (l *fixedWindowLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
