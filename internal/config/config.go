// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Database DatabaseConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds SQLite related options.
type DatabaseConfig struct {
	// Path overrides the default database location when non-empty.
	Path string
}

// LoggingConfig holds structured logging options.
type LoggingConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Path: os.Getenv("CROFT_DB_PATH"),
		},
		Logging: LoggingConfig{
			Level: getenvWithDefault("CROFT_LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that configuration fields hold accepted values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("CROFT_LOG_LEVEL %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
