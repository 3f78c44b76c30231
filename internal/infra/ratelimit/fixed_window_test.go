package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Hritik000/valentine-gifts-hub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(maxAttempts int, windowSize time.Duration) *fixedWindowLimiter {
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{
			MaxAttempts: maxAttempts,
			Window:      windowSize,
		},
	}

	return NewFixedWindowLimiter(cfg).(*fixedWindowLimiter)
}

func TestFixedWindowLimiter_AllowsUpToBudget(t *testing.T) {
	limiter := newTestLimiter(5, 10*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		decision, err := limiter.Allow(ctx, "buyer@example.com")
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "attempt %d should be allowed", i+1)
		assert.Equal(t, 4-i, decision.Remaining)
	}

	decision, err := limiter.Allow(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Greater(t, decision.RetryIn, time.Duration(0))
	assert.LessOrEqual(t, decision.RetryIn, 10*time.Minute)
}

func TestFixedWindowLimiter_KeysAreIndependent(t *testing.T) {
	limiter := newTestLimiter(1, 10*time.Minute)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "first@example.com")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := limiter.Allow(ctx, "first@example.com")
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	second, err := limiter.Allow(ctx, "second@example.com")
	require.NoError(t, err)
	assert.True(t, second.Allowed)
}

func TestFixedWindowLimiter_WindowResets(t *testing.T) {
	limiter := newTestLimiter(2, 10*time.Minute)

	current := time.Now()
	limiter.now = func() time.Time { return current }

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		decision, err := limiter.Allow(ctx, "buyer@example.com")
		require.NoError(t, err)
		require.True(t, decision.Allowed)
	}

	decision, err := limiter.Allow(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.False(t, decision.Allowed)

	// Past the window boundary the budget is fresh.
	current = current.Add(10*time.Minute + time.Second)

	decision, err = limiter.Allow(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, decision.Remaining)
}

func TestFixedWindowLimiter_SweepsExpiredWindows(t *testing.T) {
	limiter := newTestLimiter(5, 10*time.Minute)

	current := time.Now()
	limiter.now = func() time.Time { return current }

	ctx := context.Background()

	for i := 0; i < sweepThreshold+1; i++ {
		_, err := limiter.Allow(ctx, fmt.Sprintf("buyer%d@example.com", i))
		require.NoError(t, err)
	}
	require.Greater(t, len(limiter.windows), sweepThreshold)

	current = current.Add(11 * time.Minute)

	_, err := limiter.Allow(ctx, "fresh@example.com")
	require.NoError(t, err)

	// All expired windows were dropped, only the fresh key remains.
	assert.Equal(t, 1, len(limiter.windows))
}

func TestFixedWindowLimiter_Defaults(t *testing.T) {
	limiter := NewFixedWindowLimiter(&config.Config{}).(*fixedWindowLimiter)

	assert.Equal(t, 5, limiter.maxAttempts)
	assert.Equal(t, 10*time.Minute, limiter.windowSize)
}
