package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.MCP.validate(),
		c.API.validate(),
		c.RateLimit.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	switch s.Environment {
	case "development", "production", "test":
		// Valid environments.
	default:
		errs = append(errs, fmt.Errorf("server.environment must be one of: development, production, test; got %q",
			s.Environment))
	}

	switch s.LogLevel {
	case "error", "warn", "info", "debug":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("server.log_level must be one of: error, warn, info, debug; got %q",
			s.LogLevel))
	}

	return errors.Join(errs...)
}

func (m *MCPConfig) validate() error {
	var errs []error

	switch m.Transport {
	case "stdio", "http", "sse":
		// Valid transports.
	default:
		errs = append(errs, fmt.Errorf("mcp.transport must be one of: stdio, http, sse; got %q", m.Transport))
	}

	if m.HTTP.Port < 1 || m.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("mcp.http.port must be between 1 and 65535, got %d", m.HTTP.Port))
	}
	if m.HTTP.Host == "" {
		errs = append(errs, errors.New("mcp.http.host must not be empty"))
	}
	if !strings.HasPrefix(m.HTTP.Endpoint, "/") {
		errs = append(errs, fmt.Errorf("mcp.http.endpoint must start with /, got %q", m.HTTP.Endpoint))
	}

	return errors.Join(errs...)
}

func (a *APIConfig) validate() error {
	var errs []error

	if u, err := url.Parse(a.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url must be an absolute URL, got %q", a.BaseURL))
	}
	if a.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %d", a.Timeout))
	}
	if a.RetryAttempts < 0 {
		errs = append(errs, fmt.Errorf("api.retry_attempts must not be negative, got %d", a.RetryAttempts))
	}
	if a.RetryDelay < 0 {
		errs = append(errs, fmt.Errorf("api.retry_delay must not be negative, got %d", a.RetryDelay))
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	var errs []error

	if r.WindowMS <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.window_ms must be positive, got %d", r.WindowMS))
	}
	if r.MaxRequests <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.max_requests must be positive, got %d", r.MaxRequests))
	}

	return errors.Join(errs...)
}
