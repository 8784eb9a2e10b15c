package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds limiter-wide settings and the per-endpoint overrides.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// EndpointConfig overrides the default limit for one endpoint. A Path ending
// in "/" matches by prefix, so "/keywords/" covers "/keywords/{id}/sample".
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per window; <= 0 means unlimited
	Window time.Duration
	Burst  int // burst capacity, defaults to Limit
}

// LoadConfig reads limiter settings from RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the built-in per-endpoint limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Analyze runs a remote model call per request, so it gets the
		// strictest limit.
		{Path: "/keywords/", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},

		// Stateless sampling and scoring are pure CPU work but still accept
		// arbitrarily large payloads.
		{Path: "/sample", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/opportunity", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},

		// Store-backed reads under /keywords/ fall through to the default
		// limit; health checks are unlimited via the matcher.
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
