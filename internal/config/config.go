// Package config loads server configuration from environment variables
// with sensible defaults for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting of the server.
type Config struct {
	Port         string
	DatabasePath string
	UploadDir    string

	// ModelURL points at the external prediction model server. Empty
	// disables the prediction endpoints.
	ModelURL     string
	ModelTimeout time.Duration

	// StagingTTL bounds how long a partial two-file upload survives
	// between requests; StagingSweepInterval drives the janitor.
	StagingTTL           time.Duration
	StagingSweepInterval time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabasePath:         getEnv("DATABASE_PATH", "data/obeserver.db"),
		UploadDir:            getEnv("UPLOAD_DIR", "uploads"),
		ModelURL:             getEnv("MODEL_URL", ""),
		ModelTimeout:         getEnvDuration("MODEL_TIMEOUT", 20*time.Second),
		StagingTTL:           getEnvDuration("STAGING_TTL", time.Hour),
		StagingSweepInterval: getEnvDuration("STAGING_SWEEP_INTERVAL", 5*time.Minute),
		RateLimitRPS:         getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:       getEnvInt("RATE_LIMIT_BURST", 10),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports the first configuration error, if any.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.StagingTTL <= 0 {
		return fmt.Errorf("staging TTL must be positive, got %s", c.StagingTTL)
	}
	if c.ModelTimeout <= 0 {
		return fmt.Errorf("model timeout must be positive, got %s", c.ModelTimeout)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit RPS must be positive, got %g", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
