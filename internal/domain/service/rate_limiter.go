package service

import (
	"context"
	"time"
)

// Decision is the outcome of one rate-limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	RetryIn   time.Duration
}

// RateLimiter is the abuse-control component guarding order creation. It is
// a soft, best-effort control (per-instance, resets on restart), not a
// security boundary.
type RateLimiter interface {
	// Allow consumes one attempt for the key and reports whether the
	// caller is within budget. RetryIn is the time until the current
	// window resets.
	Allow(ctx context.Context, key string) (Decision, error)
}
