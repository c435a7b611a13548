// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, export, rate limiting and label rendering

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"article-labels-api/core/domain"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Export contains file export and print document configuration
	Export ExportConfig

	// RateLimit contains request rate limiting configuration
	RateLimit RateLimitConfig

	// Label contains the default label rendering parameters
	Label LabelConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel is the minimum logged level (debug/info/warn/error)
	LogLevel string

	// LogFile is the rotating log file path; empty logs to stdout
	LogFile string
}

// ExportConfig holds file export configuration
type ExportConfig struct {
	// Dir is the directory exported label files are written into
	Dir string

	// PrintDocTTL is how long presented print documents are kept on disk,
	// in seconds
	PrintDocTTL int
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window per client
	Requests int

	// WindowSeconds is the length of the rate limiting window in seconds
	WindowSeconds int
}

// LabelConfig holds the default label rendering parameters
type LabelConfig struct {
	// Width is the rendered image width in pixels
	Width int

	// Margin is the quiet zone around the symbol in modules
	Margin int

	// Foreground is the module color as a #RRGGBB string
	Foreground string

	// Background is the canvas color as a #RRGGBB string
	Background string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8000"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
			LogFile:  getEnvOrDefault("LOG_FILE", ""),
		},
		Export: ExportConfig{
			Dir:         getEnvOrDefault("EXPORT_DIR", "exports"),
			PrintDocTTL: getEnvAsIntOrDefault("PRINT_DOC_TTL", 120),
		},
		RateLimit: RateLimitConfig{
			Requests:      getEnvAsIntOrDefault("RATE_LIMIT", 20),
			WindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW", 60),
		},
		Label: LabelConfig{
			Width:      getEnvAsIntOrDefault("LABEL_WIDTH", domain.DefaultSymbolWidth),
			Margin:     getEnvAsIntOrDefault("LABEL_MARGIN", domain.DefaultQuietZone),
			Foreground: getEnvOrDefault("LABEL_FOREGROUND", "#000000"),
			Background: getEnvOrDefault("LABEL_BACKGROUND", "#FFFFFF"),
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

// RenderOptions converts the label section into render options
func (l LabelConfig) RenderOptions() (domain.RenderOptions, error) {
	fg, err := domain.ParseHexColor(l.Foreground)
	if err != nil {
		return domain.RenderOptions{}, fmt.Errorf("label foreground: %w", err)
	}
	bg, err := domain.ParseHexColor(l.Background)
	if err != nil {
		return domain.RenderOptions{}, fmt.Errorf("label background: %w", err)
	}

	return domain.RenderOptions{
		Width:      l.Width,
		Margin:     l.Margin,
		Foreground: fg,
		Background: bg,
	}, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	if c.Export.Dir == "" {
		return errors.New("export directory cannot be empty")
	}

	if c.Export.PrintDocTTL < 1 {
		return errors.New("print document TTL must be at least 1 second")
	}

	if c.RateLimit.Requests < 1 {
		return errors.New("rate limit must allow at least 1 request")
	}

	if c.RateLimit.WindowSeconds < 1 {
		return errors.New("rate limit window must be at least 1 second")
	}

	if c.Label.Width < 1 {
		return errors.New("label width must be at least 1 pixel")
	}

	if c.Label.Margin < 0 {
		return errors.New("label margin cannot be negative")
	}

	if _, err := c.Label.RenderOptions(); err != nil {
		return err
	}

	return nil
}
