package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		Exempt:        make(map[string]bool),
		Blocked:       make(map[string]bool),
		Rules:         DefaultRules(),
	}
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/guides", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiterBurstThenRefuse(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = []Rule{{Path: "/guides", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3}}
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/guides", "POST")
		require.True(t, allowed, "request %d within burst should pass", i+1)
		assert.Equal(t, 10, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/guides", "POST")
	assert.False(t, allowed)
	assert.Positive(t, info.RetryAfter)
}

func TestLimiterPerClientIsolation(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = []Rule{{Path: "/guides", Method: "POST", Limit: 10, Window: time.Hour, Burst: 1}}
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/guides", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/guides", "POST")
	require.False(t, allowed)

	// A different client has its own bucket
	allowed, _ = l.Allow("5.6.7.8", "/guides", "POST")
	assert.True(t, allowed)
}

func TestLimiterExemptAndBlocked(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = []Rule{{Path: "/guides", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1}}
	cfg.Exempt["10.0.0.1"] = true
	cfg.Blocked["10.0.0.2"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/guides", "POST")
		assert.True(t, allowed, "exempt client is never limited")
	}

	allowed, _ := l.Allow("10.0.0.2", "/guides", "POST")
	assert.False(t, allowed, "blocked client is always refused")
}

func TestMatchRules(t *testing.T) {
	cfg := testConfig()

	rule := cfg.match("/health", "GET")
	assert.LessOrEqual(t, rule.Limit, 0, "health checks are unlimited")

	rule = cfg.match("/guides", "POST")
	assert.Equal(t, 30, rule.Limit)

	// Prefix match for parameterized paths
	rule = cfg.match("/guides/9d3b9d6e", "DELETE")
	assert.Equal(t, 60, rule.Limit)

	// Unmatched endpoints use the default
	rule = cfg.match("/plans", "GET")
	assert.Equal(t, cfg.DefaultLimit, rule.Limit)
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_EXEMPT", "1.1.1.1, 2.2.2.2")

	cfg := LoadConfig()
	assert.Equal(t, 50, cfg.DefaultLimit)
	assert.True(t, cfg.Exempt["1.1.1.1"])
	assert.True(t, cfg.Exempt["2.2.2.2"])
}

func TestEvictIdle(t *testing.T) {
	cfg := testConfig()
	l := NewLimiter(cfg)
	defer l.Stop()

	l.Allow("1.2.3.4", "/plans", "GET")
	require.Len(t, l.buckets, 1)

	l.evictIdle(0)
	assert.Empty(t, l.buckets)
}
