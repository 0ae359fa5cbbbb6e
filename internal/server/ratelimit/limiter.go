// Package ratelimit throttles API clients with per-endpoint token buckets.
// Each client/endpoint pair gets its own bucket; tokens refill continuously
// at the rate implied by the endpoint's rule.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// idleTTL is how long an untouched bucket survives before the sweeper
// drops it.
const idleTTL = time.Hour

// Decision is the outcome of one Allow call, carrying the values the HTTP
// layer reports back in rate-limit headers.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	Reset      time.Time
	RetryAfter time.Duration
}

// bucket is one client's token balance for one endpoint.
type bucket struct {
	mu       sync.Mutex
	tokens   float64
	max      float64
	perSec   float64
	refilled time.Time
	lastSeen time.Time
}

func newBucket(burst int, perSec float64) *bucket {
	now := time.Now()
	return &bucket{
		tokens:   float64(burst),
		max:      float64(burst),
		perSec:   perSec,
		refilled: now,
		lastSeen: now,
	}
}

// refill credits the tokens earned since the last refill, capped at max.
// Callers must hold b.mu.
func (b *bucket) refill(now time.Time) {
	b.tokens = math.Min(b.max, b.tokens+now.Sub(b.refilled).Seconds()*b.perSec)
	b.refilled = now
}

// take consumes one token if the balance allows it.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// snapshot reports the remaining whole tokens and when the bucket will be
// full again, without consuming anything.
func (b *bucket) snapshot() (remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)

	reset = now
	if b.tokens < b.max {
		wait := (b.max - b.tokens) / b.perSec
		reset = now.Add(time.Duration(wait * float64(time.Second)))
	}
	return int(b.tokens), reset
}

// Limiter hands out tokens per client and endpoint. Safe for concurrent
// use. A background sweep drops buckets idle longer than idleTTL so
// one-off clients do not accumulate forever.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cfg     *Config
	sweeper *time.Ticker
	done    chan struct{}
}

// NewLimiter builds a Limiter from cfg; nil means the built-in defaults.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = defaultConfig()
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		cfg:     cfg,
	}

	if cfg.Enabled && cfg.SweepEvery > 0 {
		l.sweeper = time.NewTicker(cfg.SweepEvery)
		l.done = make(chan struct{})
		go l.sweepLoop()
	}

	return l
}

// Allow decides whether one request from client may proceed. Requests to
// endpoints without a rule fall back to the config-wide limit; rules with
// Limit 0 (the health check) are never throttled.
func (l *Limiter) Allow(client, path, method string) (bool, Decision) {
	if !l.cfg.Enabled {
		return true, Decision{Allowed: true}
	}

	rule := ruleFor(path, method, l.cfg.Rules)
	if rule == nil {
		rule = &Rule{
			Limit:  l.cfg.FallbackLimit,
			Window: l.cfg.FallbackWindow,
		}
	}
	if rule.Limit <= 0 {
		return true, Decision{Allowed: true}
	}

	b := l.bucketFor(client+"|"+method+" "+path, rule)
	allowed := b.take()
	remaining, reset := b.snapshot()

	d := Decision{
		Allowed:   allowed,
		Limit:     rule.Limit,
		Remaining: remaining,
		Reset:     reset,
	}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			d.RetryAfter = wait
		}
	}
	return allowed, d
}

// bucketFor returns the bucket for key, creating it from the rule on first
// sight. Burst defaults to the full limit when a rule leaves it zero.
func (l *Limiter) bucketFor(key string, rule *Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := rule.Burst
	if burst <= 0 {
		burst = rule.Limit
	}
	b := newBucket(burst, float64(rule.Limit)/rule.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) sweepLoop() {
	for {
		select {
		case <-l.sweeper.C:
			l.dropIdle(time.Now().Add(-idleTTL))
		case <-l.done:
			return
		}
	}
}

func (l *Limiter) dropIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		b.mu.Lock()
		idle := b.lastSeen.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}

// Stop ends the background sweep. Safe to call on a limiter that never
// started one.
func (l *Limiter) Stop() {
	if l.sweeper != nil {
		l.sweeper.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
