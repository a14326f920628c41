package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Color modes for terminal output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds all configuration for algocards
type Config struct {
	Log     LogConfig
	Catalog CatalogConfig
	Output  OutputConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// CatalogConfig holds content source configuration
type CatalogConfig struct {
	// Dir replaces the embedded catalog with category files from disk when set.
	Dir string
}

// OutputConfig holds terminal output configuration
type OutputConfig struct {
	Color string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("ALGOCARDS_LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("ALGOCARDS_LOG_FORMAT", LogFormatJSON)),
		},
		Catalog: CatalogConfig{
			Dir: getEnv("ALGOCARDS_CATALOG_DIR", ""),
		},
		Output: OutputConfig{
			Color: strings.ToLower(getEnv("ALGOCARDS_COLOR", ColorAuto)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode: %q", c.Output.Color)
	}

	return nil
}

// SlogLevel returns the configured log level. It falls back to info for
// values Validate would reject.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", s)
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
