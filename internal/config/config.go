package config

import (
	"os"
	"strconv"

	"statlab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Report ReportConfig
	Data   DataConfig
}

// ServerConfig holds JSON API server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ReportConfig holds the HTML report server settings
type ReportConfig struct {
	Port    string
	Enabled bool
}

// DataConfig holds data source settings
type DataConfig struct {
	File          string
	MaxConcurrent int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("SERVER_PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Report: ReportConfig{
			Port:    getEnvOrDefault("REPORT_PORT", "8081"),
			Enabled: getEnvBoolOrDefault("REPORT_ENABLED", true),
		},
		Data: DataConfig{
			File:          os.Getenv("DATA_FILE"),
			MaxConcurrent: int64(getEnvIntOrDefault("MAX_CONCURRENT", 4)),
		},
	}

	if config.Data.File == "" {
		return nil, errors.ConfigInvalid("DATA_FILE is required")
	}
	if config.Data.MaxConcurrent < 1 {
		return nil, errors.ConfigInvalid("MAX_CONCURRENT must be at least 1")
	}

	return config, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
