package ratelimit

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(rules ...Rule) *Config {
	return &Config{
		Enabled:        true,
		FallbackLimit:  100,
		FallbackWindow: time.Hour,
		Rules:          rules,
	}
}

func TestAllow_BurstThenDeny(t *testing.T) {
	limiter := NewLimiter(testConfig(
		Rule{Path: "/api/match/batch", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},
	))
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, d := limiter.Allow("10.0.0.1", "/api/match/batch", http.MethodPost)
		require.True(t, allowed, "request %d within burst", i+1)
		assert.Equal(t, 30, d.Limit)
	}

	allowed, d := limiter.Allow("10.0.0.1", "/api/match/batch", http.MethodPost)
	assert.False(t, allowed, "burst exhausted")
	assert.Zero(t, d.Remaining)
	assert.Positive(t, d.RetryAfter)
	assert.True(t, d.Reset.After(time.Now()))
}

func TestAllow_RemainingCountsDown(t *testing.T) {
	limiter := NewLimiter(testConfig(
		Rule{Path: "/api/match", Method: http.MethodPost, Limit: 10, Window: time.Hour, Burst: 10},
	))
	defer limiter.Stop()

	for i := 1; i <= 5; i++ {
		allowed, d := limiter.Allow("10.0.0.1", "/api/match", http.MethodPost)
		require.True(t, allowed)
		assert.Equal(t, 10-i, d.Remaining)
	}
}

func TestAllow_RefillEventuallyAllows(t *testing.T) {
	// 600/min is 10 tokens a second, so a denied client gets back in
	// within a short sleep.
	limiter := NewLimiter(testConfig(
		Rule{Path: "/api/match", Method: http.MethodPost, Limit: 600, Window: time.Minute, Burst: 1},
	))
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/api/match", http.MethodPost)
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/api/match", http.MethodPost)
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)

	allowed, _ = limiter.Allow("10.0.0.1", "/api/match", http.MethodPost)
	assert.True(t, allowed, "token refilled after waiting")
}

func TestAllow_HealthNeverThrottled(t *testing.T) {
	cfg := testConfig()
	cfg.FallbackLimit = 1
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, d := limiter.Allow("10.0.0.1", "/health", http.MethodGet)
		require.True(t, allowed, "health request %d", i+1)
		assert.Zero(t, d.Limit)
	}
}

func TestAllow_FallbackForUnmatchedPath(t *testing.T) {
	limiter := NewLimiter(testConfig(DefaultRules()...))
	defer limiter.Stop()

	allowed, d := limiter.Allow("10.0.0.1", "/api/unknown", http.MethodGet)
	assert.True(t, allowed)
	assert.Equal(t, 100, d.Limit, "fallback limit applies")
}

func TestAllow_ClientsDoNotShareBuckets(t *testing.T) {
	limiter := NewLimiter(testConfig(
		Rule{Path: "/api/match/batch", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 1},
	))
	defer limiter.Stop()

	first, _ := limiter.Allow("10.0.0.1", "/api/match/batch", http.MethodPost)
	second, _ := limiter.Allow("10.0.0.2", "/api/match/batch", http.MethodPost)
	assert.True(t, first)
	assert.True(t, second, "a second client starts with its own full bucket")
}

func TestAllow_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 200; i++ {
		allowed, d := limiter.Allow("10.0.0.1", "/api/match", http.MethodPost)
		require.True(t, allowed)
		assert.Zero(t, d.Limit)
	}
}

func TestAllow_ConcurrentRequestsRespectTheLimit(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("10.0.0.1", "/api/match", http.MethodPost); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestDropIdle(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		client := fmt.Sprintf("10.0.0.%d", i+1)
		allowed, _ := limiter.Allow(client, "/api/match", http.MethodPost)
		require.True(t, allowed)
	}

	limiter.mu.Lock()
	before := len(limiter.buckets)
	limiter.mu.Unlock()
	require.Equal(t, 10, before)

	// A cutoff in the future makes every bucket look idle.
	limiter.dropIdle(time.Now().Add(time.Minute))

	limiter.mu.Lock()
	after := len(limiter.buckets)
	limiter.mu.Unlock()
	assert.Zero(t, after)

	// Dropped clients start over with a fresh bucket.
	allowed, _ := limiter.Allow("10.0.0.1", "/api/match", http.MethodPost)
	assert.True(t, allowed)
}

func TestNewLimiter_NilConfigUsesDefaults(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, d := limiter.Allow("10.0.0.1", "/api/unknown", http.MethodGet)
	assert.True(t, allowed)
	assert.Equal(t, 1000, d.Limit)
}

func TestBucket_RefillIsCapped(t *testing.T) {
	b := newBucket(5, 1000)
	time.Sleep(10 * time.Millisecond)

	remaining, _ := b.snapshot()
	assert.Equal(t, 5, remaining, "refill never exceeds the burst capacity")
}
