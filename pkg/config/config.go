// ABOUTME: Configuration management for the resolver with environment variable support
// ABOUTME: Defines server, HTTP transport, logging and metrics settings plus .env loading

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP API configuration
	Server ServerConfig

	// HTTP contains outbound request configuration
	HTTP HTTPConfig

	// Log contains logger configuration
	Log LogConfig

	// Metrics contains Prometheus configuration
	Metrics MetricsConfig
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// MaxBatchURLs caps how many URLs one /resolve request may carry
	MaxBatchURLs int
}

// HTTPConfig holds outbound request configuration
type HTTPConfig struct {
	// Timeout bounds each individual request
	Timeout time.Duration

	// UserAgent is sent with every request
	UserAgent string

	// MaxAttempts is how many times a request is tried on network errors and 5xx.
	// The default of 1 keeps a resolution within 1+MaxHops requests on the wire.
	// Higher values are an opt-in: each hop may then cost up to MaxAttempts
	// requests, so a resolution can send (1+MaxHops)*MaxAttempts in total.
	MaxAttempts int
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	// Enabled exposes /metrics and records resolution metrics
	Enabled bool
}

// LoadDotEnv loads variables from the given .env files (".env" if none),
// leaving already-set variables alone. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	timeout, err := getEnvAsDurationOrDefault("HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8000"),
			MaxBatchURLs: getEnvAsIntOrDefault("MAX_BATCH_URLS", 20),
		},
		HTTP: HTTPConfig{
			Timeout:     timeout,
			UserAgent:   getEnvOrDefault("HTTP_USER_AGENT", "FeedResolver/1.0"),
			MaxAttempts: getEnvAsIntOrDefault("HTTP_MAX_ATTEMPTS", 1),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBoolOrDefault("METRICS_ENABLED", true),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("15s") or plain seconds ("15")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.MaxBatchURLs < 1 {
		return errors.New("max batch urls must be at least 1")
	}

	if c.HTTP.Timeout <= 0 {
		return errors.New("http timeout must be positive")
	}

	if c.HTTP.MaxAttempts < 1 {
		return errors.New("http max attempts must be at least 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
