package ratelimit

import (
	"strings"
)

// MatchEndpoint finds the endpoint configuration for a request path and
// method. Exact matches win over prefix matches; nil means no override.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
