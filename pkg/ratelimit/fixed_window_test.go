package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowLimiter(t *testing.T) {
	server := miniredis.RunT(t)
	limiter, err := NewFixedWindowLimiter(server.Addr(), "", "test:ratelimit", 2, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = limiter.Close() })

	ctx := context.Background()
	assert.True(t, limiter.Allow(ctx, "ip-1"), "first request should pass")
	assert.True(t, limiter.Allow(ctx, "ip-1"), "second request should pass")
	assert.False(t, limiter.Allow(ctx, "ip-1"), "third request should be blocked")
	assert.True(t, limiter.Allow(ctx, "ip-2"), "other keys have their own quota")
}

func TestFixedWindowLimiterNextWindow(t *testing.T) {
	server := miniredis.RunT(t)
	limiter, err := NewFixedWindowLimiter(server.Addr(), "", "test:ratelimit", 1, time.Minute)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	ctx := context.Background()
	require.True(t, limiter.Allow(ctx, "ip-1"))
	require.False(t, limiter.Allow(ctx, "ip-1"))

	now = now.Add(time.Minute)
	assert.True(t, limiter.Allow(ctx, "ip-1"))
}

func TestFixedWindowLimiterFailClosed(t *testing.T) {
	server := miniredis.RunT(t)
	limiter, err := NewFixedWindowLimiter(server.Addr(), "", "test:ratelimit", 1, time.Second)
	require.NoError(t, err)

	server.Close()
	assert.False(t, limiter.Allow(context.Background(), "ip-1"))
}

func TestFixedWindowLimiterRequiresRedisAddr(t *testing.T) {
	limiter, err := NewFixedWindowLimiter("", "", "test:ratelimit", 1, time.Second)
	assert.Error(t, err)
	assert.Nil(t, limiter)
}

func TestFixedWindowLimiterRequiresPositiveLimit(t *testing.T) {
	_, err := NewFixedWindowLimiter("127.0.0.1:6379", "", "", 0, time.Second)
	assert.Error(t, err)
}
