// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the localizer, fetcher, HTTP, and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Localize contains localizer run configuration
	Localize LocalizeConfig

	// Fetch contains fixed-asset fetcher configuration
	Fetch FetchConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// Logging contains log output configuration
	Logging LoggingConfig
}

// LocalizeConfig holds localizer run configuration
type LocalizeConfig struct {
	// Root is the directory scanned for documents
	Root string
}

// FetchConfig holds fixed-asset fetcher configuration
type FetchConfig struct {
	// Manifest is an explicit manifest path; empty means discover or embedded
	Manifest string
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	// Timeout is the per-request timeout in seconds
	Timeout int

	// UserAgent overrides the default request User-Agent when set
	UserAgent string

	// RequestsPerSecond paces outbound downloads; zero disables pacing
	RequestsPerSecond float64
}

// LoggingConfig holds log output configuration
type LoggingConfig struct {
	// Level is the minimum level emitted (debug/info/warn/error)
	Level string

	// Format selects the output format (text/json)
	Format string

	// File, when set, sends log output to a size-rotated file
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Localize: LocalizeConfig{
			Root: getEnvOrDefault("LOCALIZE_ROOT", "."),
		},
		Fetch: FetchConfig{
			Manifest: getEnvOrDefault("FETCH_MANIFEST", ""),
		},
		HTTP: HTTPConfig{
			Timeout:           getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
			UserAgent:         getEnvOrDefault("HTTP_USER_AGENT", ""),
			RequestsPerSecond: getEnvAsFloatOrDefault("DOWNLOAD_RATE", 0),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Localize.Root == "" {
		return errors.New("localize root cannot be empty")
	}

	if c.HTTP.Timeout < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.HTTP.RequestsPerSecond < 0 {
		return errors.New("download rate cannot be negative")
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be 'debug', 'info', 'warn' or 'error'")
	}

	return nil
}
