package config

const (
	defaultHTTPPort = 3000

	defaultAPITimeout       = 30000
	defaultAPIRetryAttempts = 3
	defaultAPIRetryDelay    = 1000

	defaultRateLimitWindowMS    = 60000
	defaultRateLimitMaxRequests = 100
)

// defaults returns the built-in configuration values. These are loaded as the
// first layer and can be overridden per field by environment variables.
func defaults() map[string]any {
	return map[string]any{
		"server.name":        ServerName,
		"server.version":     ServerVersion,
		"server.environment": "development",
		"server.log_level":   "info",

		"mcp.transport":     "stdio",
		"mcp.http.port":     defaultHTTPPort,
		"mcp.http.host":     "localhost",
		"mcp.http.endpoint": "/mcp",

		"api.base_url":       "https://glue.de.faas-suite-prod.demo-spryker.com",
		"api.timeout":        defaultAPITimeout,
		"api.retry_attempts": defaultAPIRetryAttempts,
		"api.retry_delay":    defaultAPIRetryDelay,

		"rate_limit.window_ms":    defaultRateLimitWindowMS,
		"rate_limit.max_requests": defaultRateLimitMaxRequests,

		"features.guest_checkout":   true,
		"features.product_search":   true,
		"features.cart_operations":  true,
		"features.order_management": true,
		"features.customer_auth":    true,
	}
}
