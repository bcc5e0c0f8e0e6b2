package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

// envKeys maps each recognized environment variable to its koanf key. Only
// variables listed here are read; everything else in the process environment
// is ignored. NODE_ENV and the SPRYKER_* names are kept as-is for
// compatibility with existing deployments.
var envKeys = map[string]string{
	"NODE_ENV":  "server.environment",
	"LOG_LEVEL": "server.log_level",

	"MCP_TRANSPORT":     "mcp.transport",
	"MCP_HTTP_PORT":     "mcp.http.port",
	"MCP_HTTP_HOST":     "mcp.http.host",
	"MCP_HTTP_ENDPOINT": "mcp.http.endpoint",

	"SPRYKER_API_BASE_URL":       "api.base_url",
	"SPRYKER_API_TIMEOUT":        "api.timeout",
	"SPRYKER_API_RETRY_ATTEMPTS": "api.retry_attempts",
	"SPRYKER_API_RETRY_DELAY":    "api.retry_delay",

	"RATE_LIMIT_WINDOW_MS":    "rate_limit.window_ms",
	"RATE_LIMIT_MAX_REQUESTS": "rate_limit.max_requests",

	"SPRYKER_CLIENT_ID":     "auth.client_id",
	"SPRYKER_CLIENT_SECRET": "auth.client_secret",
}

// Load reads configuration using a 2-layer hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. Environment variables (the fixed set in envKeys)
//
// Numeric variables must parse as integers; a malformed value fails the load
// with an error naming the key and the received value rather than silently
// substituting a default. Empty variables are treated as unset. Load performs
// no file or network I/O, and any failure aborts startup so the process never
// runs with an inconsistent configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: built-in defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: environment variables. The transform resolves recognized
	// names through envKeys; returning an empty key skips the variable.
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			koanfKey, ok := envKeys[key]
			if !ok || value == "" {
				return "", nil
			}
			return koanfKey, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config. Numeric coercion happens here: string values
	// from the environment are parsed into ints, and malformed input
	// surfaces as a decode error identifying the key and received value.
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
