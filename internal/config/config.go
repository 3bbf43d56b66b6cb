package config

import (
	"os"
	"strconv"
	"time"

	"coanalyst/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Progress ProgressConfig
	History  HistoryConfig
	Sampler  SamplerConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds upload boundary settings
type UploadConfig struct {
	MaxBytes int64
}

// ProgressConfig scales the simulated step durations; tests and the CLI set
// Scale to 0 to run the sequence without real delays.
type ProgressConfig struct {
	Scale float64
}

// HistoryConfig holds the optional run-history store settings. History is
// disabled unless a database path is configured.
type HistoryConfig struct {
	Path string
}

// SamplerConfig seeds the placeholder metric sampler
type SamplerConfig struct {
	Seed uint64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64OrDefault("UPLOAD_MAX_BYTES", 50*1024*1024),
		},
		Progress: ProgressConfig{
			Scale: getEnvFloatOrDefault("PROGRESS_SCALE", 1.0),
		},
		History: HistoryConfig{
			Path: os.Getenv("HISTORY_DB_PATH"),
		},
		Sampler: SamplerConfig{
			Seed: getEnvUint64OrDefault("SAMPLER_SEED", uint64(time.Now().UnixNano())),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	if config.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("UPLOAD_MAX_BYTES must be positive")
	}
	if config.Progress.Scale < 0 {
		return errors.ConfigInvalid("PROGRESS_SCALE cannot be negative")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64OrDefault(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvUint64OrDefault(key string, fallback uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseUint(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
