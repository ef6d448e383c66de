// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	DBPath      string

	// Collaborator endpoints. Empty values select the static in-memory
	// implementations (demo mode).
	WeatherAPIKey    string
	WeatherAPIURL    string
	MarketAPIURL     string
	MotorGatewayAddr string

	// SensorMaxAge bounds how old a registry reading may be before context
	// assembly ignores it.
	SensorMaxAge time.Duration

	// Retention window and sweep cadence for the advice log.
	Retention     time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	retentionDays := getEnvInt("ADVICE_RETENTION_DAYS", 90)
	if retentionDays <= 0 {
		retentionDays = 90
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		FrontendURL:      getEnv("FRONTEND_URL", ""),
		DBPath:           getEnv("DB_PATH", "./data/agrisaarthi.db"),
		WeatherAPIKey:    getEnv("WEATHER_API_KEY", ""),
		WeatherAPIURL:    getEnv("WEATHER_API_URL", ""),
		MarketAPIURL:     getEnv("MARKET_API_URL", ""),
		MotorGatewayAddr: getEnv("MOTOR_GATEWAY_ADDR", ""),
		SensorMaxAge:     time.Duration(getEnvInt("SENSOR_MAX_AGE_MINUTES", 30)) * time.Minute,
		Retention:        time.Duration(retentionDays) * 24 * time.Hour,
		SweepInterval:    time.Duration(getEnvInt("SWEEP_INTERVAL_MINUTES", 60)) * time.Minute,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL_MINUTES must be > 0")
	}
	if c.SensorMaxAge <= 0 {
		return fmt.Errorf("SENSOR_MAX_AGE_MINUTES must be > 0")
	}
	return nil
}

// DemoMode reports whether the weather collaborator is unconfigured and
// static providers should be wired in.
func (c *Config) DemoMode() bool {
	return c.WeatherAPIKey == ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
