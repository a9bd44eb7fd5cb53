package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the upstream market data provider, and the result cache.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	UPSTREAM_BASE_URL=https://query1.finance.yahoo.com
//	UPSTREAM_TIMEOUT_SEC=20
//	CACHE_TTL_SEC=600
//	CACHE_MAX_ENTRIES=256
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Upstream market data provider settings
	Cache    CacheConfig    // In-memory result cache settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines how the service reaches the upstream market data provider.
//
// Fields:
//   - BaseURL: scheme and host of the provider (no trailing slash).
//   - TimeoutSec: total per-call network timeout in seconds. There is no
//     retry or backoff; a failed upstream call fails the request immediately.
type UpstreamConfig struct {
	BaseURL    string
	TimeoutSec int
}

// CacheConfig defines the bounds of the in-memory result cache.
//
// Fields:
//   - TTLSec: time-to-live of every entry, in seconds, applied uniformly.
//   - MaxEntries: maximum number of entries held at once; the least recently
//     used entry is evicted on overflow.
type CacheConfig struct {
	TTLSec     int
	MaxEntries int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("UPSTREAM_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("UPSTREAM_TIMEOUT_SEC", 20)

	viper.SetDefault("CACHE_TTL_SEC", 600)
	viper.SetDefault("CACHE_MAX_ENTRIES", 256)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL:    viper.GetString("UPSTREAM_BASE_URL"),
			TimeoutSec: viper.GetInt("UPSTREAM_TIMEOUT_SEC"),
		},
		Cache: CacheConfig{
			TTLSec:     viper.GetInt("CACHE_TTL_SEC"),
			MaxEntries: viper.GetInt("CACHE_MAX_ENTRIES"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.BaseURL == "" {
		missing = append(missing, "UPSTREAM_BASE_URL")
	}
	if AppConfig.Upstream.TimeoutSec <= 0 {
		missing = append(missing, "UPSTREAM_TIMEOUT_SEC")
	}
	if AppConfig.Cache.TTLSec <= 0 {
		missing = append(missing, "CACHE_TTL_SEC")
	}
	if AppConfig.Cache.MaxEntries <= 0 {
		missing = append(missing, "CACHE_MAX_ENTRIES")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
