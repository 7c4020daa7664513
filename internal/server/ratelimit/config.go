package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the rate limit applied to an endpoint. A Limit of zero or less
// means unlimited. Paths ending in "/" match by prefix.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Exempt          map[string]bool // client IDs that bypass limiting
	Blocked         map[string]bool // client IDs that are always refused
	Rules           []Rule
}

// LoadConfig reads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	cfg := defaultConfig()
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Exempt = parseIPList(os.Getenv("RATE_LIMIT_EXEMPT"))
	cfg.Blocked = parseIPList(os.Getenv("RATE_LIMIT_BLOCKED"))
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Exempt:          make(map[string]bool),
		Blocked:         make(map[string]bool),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the endpoint-specific limits. Guide generation is the
// expensive operation, so it gets the strictest tier.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/guides", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/guides/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/auth/token", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
	}
}

// match resolves the rule for a request. Health checks are always unlimited;
// unmatched endpoints fall back to the global default.
func (c *Config) match(path, method string) Rule {
	if path == "/health" && method == "GET" {
		return Rule{}
	}

	for _, rule := range c.Rules {
		if rule.Method != method {
			continue
		}
		if rule.Path == path {
			return rule
		}
		if strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}

	return Rule{Limit: c.DefaultLimit, Window: c.DefaultWindow, Burst: c.DefaultLimit}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of client IDs into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
