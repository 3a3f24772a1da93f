// Package config manages application configuration for the Mergington
// activities API.
//
// The config package loads and validates configuration from environment
// variables, with an optional .env file picked up from the working directory.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	SERVER_READ_TIMEOUT   - HTTP read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT  - HTTP write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS  - comma-separated origin allow list
//	STATIC_DIR            - directory served under /static/ (default: ./static)
//	RATE_LIMIT            - requests allowed per interval (default: 100)
//	RATE_LIMIT_INTERVAL   - rate limit window (default: 1m)
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
