package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for one path+method. Paths ending in
// "/" match as prefixes. Limit <= 0 means unlimited.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per Window
	Window time.Duration
	Burst  int // bucket capacity, defaults to Limit
}

// Config holds the limiter settings.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Allowlist       map[string]bool // client IDs that bypass limiting
	Denylist        map[string]bool // client IDs that are always refused
	Endpoints       []EndpointConfig
}

// LoadConfig reads limiter settings from RATE_LIMIT_* environment
// variables, falling back to sensible defaults.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Allowlist:       splitClientList(os.Getenv("RATE_LIMIT_ALLOWLIST")),
		Denylist:        splitClientList(os.Getenv("RATE_LIMIT_DENYLIST")),
		Endpoints:       DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint tiers. A search spends
// paid third-party API quota, so it gets the strictest tier; directory
// lookups are in-memory and cheap.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/search", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/api/companies/", Method: "GET", Limit: 60, Window: time.Hour, Burst: 10},

		{Path: "/api/companies/suggest", Method: "GET", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/api/providers", Method: "GET", Limit: 600, Window: time.Minute, Burst: 60},
	}
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitClientList(raw string) map[string]bool {
	out := make(map[string]bool)
	for _, entry := range strings.Split(raw, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			out[entry] = true
		}
	}
	return out
}
