// Package config provides configuration loading and validation for the MCP
// server. Configuration is read from a fixed set of environment variables
// layered over built-in defaults; the resulting Config is constructed once at
// startup, validated, and treated as read-only by all consumers.
package config

// ServerName and ServerVersion identify this server to MCP clients. They are
// fixed at build time and intentionally not environment-overridable.
const (
	ServerName    = "spryker-mcp-server"
	ServerVersion = "1.0.0"
)

// Config holds all configuration for the server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	MCP       MCPConfig       `koanf:"mcp"`
	API       APIConfig       `koanf:"api"`
	Auth      AuthConfig      `koanf:"auth"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Features  FeatureConfig   `koanf:"features"`
}

// ServerConfig holds server identity and runtime environment settings.
type ServerConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`
}

// MCPConfig holds MCP transport settings. The HTTP sub-record applies to the
// "http" and "sse" transports and is ignored for "stdio".
type MCPConfig struct {
	Transport string     `koanf:"transport"`
	HTTP      HTTPConfig `koanf:"http"`
}

// HTTPConfig holds the listen address and endpoint path for HTTP transports.
type HTTPConfig struct {
	Port     int    `koanf:"port"`
	Host     string `koanf:"host"`
	Endpoint string `koanf:"endpoint"`
}

// APIConfig holds upstream Spryker Glue API client settings. Timeout and
// RetryDelay are plain milliseconds, handed as-is to the API client.
type APIConfig struct {
	BaseURL       string `koanf:"base_url"`
	Timeout       int    `koanf:"timeout"`
	RetryAttempts int    `koanf:"retry_attempts"`
	RetryDelay    int    `koanf:"retry_delay"`
}

// AuthConfig holds optional client credentials for the upstream API.
// Both fields are empty when the corresponding variables are unset.
type AuthConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
}

// RateLimitConfig holds request rate limiting settings consumed by the
// rate-limiting middleware.
type RateLimitConfig struct {
	WindowMS    int `koanf:"window_ms"`
	MaxRequests int `koanf:"max_requests"`
}

// FeatureConfig holds capability flags read by feature-gated tool handlers.
type FeatureConfig struct {
	GuestCheckout   bool `koanf:"guest_checkout"`
	ProductSearch   bool `koanf:"product_search"`
	CartOperations  bool `koanf:"cart_operations"`
	OrderManagement bool `koanf:"order_management"`
	CustomerAuth    bool `koanf:"customer_auth"`
}
