package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule caps one endpoint. Limit requests refill evenly over Window; Burst
// is how many may land back to back before refill matters (defaults to
// Limit when zero). A Path ending in "/" matches as a prefix.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds the limiter's tuning. FallbackLimit and FallbackWindow
// apply to requests no rule matches; SweepEvery drives idle-bucket
// cleanup (0 disables it).
type Config struct {
	Enabled        bool
	FallbackLimit  int
	FallbackWindow time.Duration
	SweepEvery     time.Duration
	Rules          []Rule
}

func defaultConfig() *Config {
	return &Config{
		Enabled:        true,
		FallbackLimit:  1000,
		FallbackWindow: time.Minute,
		SweepEvery:     5 * time.Minute,
		Rules:          DefaultRules(),
	}
}

// FromEnv builds a Config from RATE_LIMIT_* environment variables,
// keeping the defaults for anything unset or unparsable.
func FromEnv() *Config {
	cfg := defaultConfig()
	cfg.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.FallbackLimit = envInt("RATE_LIMIT_FALLBACK_LIMIT", cfg.FallbackLimit)
	cfg.FallbackWindow = envDuration("RATE_LIMIT_FALLBACK_WINDOW", cfg.FallbackWindow)
	cfg.SweepEvery = envDuration("RATE_LIMIT_SWEEP_INTERVAL", cfg.SweepEvery)
	return cfg
}

// DefaultRules returns the per-endpoint limits for the API surface.
// Batch scoring fans one resume out over many postings, so it gets a far
// tighter limit than the single-document endpoints.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/api/match/batch", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},

		{Path: "/api/match", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/skills-gap", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/resume/analyze", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
	}
}

// ruleFor picks the rule governing a request. The health check is never
// throttled, exact path+method matches win over prefix rules, and nil
// means the caller should use the fallback limit.
func ruleFor(path, method string, rules []Rule) *Rule {
	if path == "/health" && method == http.MethodGet {
		return &Rule{}
	}

	for i := range rules {
		if rules[i].Path == path && rules[i].Method == method {
			return &rules[i]
		}
	}

	for i := range rules {
		if rules[i].Method != method || !strings.HasSuffix(rules[i].Path, "/") {
			continue
		}
		if strings.HasPrefix(path, rules[i].Path) {
			return &rules[i]
		}
	}

	return nil
}

func envBool(key string, fallback bool) bool {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			return v
		}
	}
	return fallback
}
