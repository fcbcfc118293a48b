// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

// Dataset sources.
const (
	SourceFixtures = "fixtures"
	SourceHTTP     = "http"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// List views
	PageSize int `env:"PAGE_SIZE" envDefault:"10"`

	// Dataset loading. DATASET_DIR empty means the embedded fixtures.
	DatasetSource string        `env:"DATASET_SOURCE" envDefault:"fixtures"`
	DatasetDir    string        `env:"DATASET_DIR" envDefault:""`
	DatasetURL    string        `env:"DATASET_URL" envDefault:"http://localhost:8080"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"5s"`

	// Trend display unit for metrics sampled in 万
	TrendWanScale string `env:"TREND_WAN_SCALE" envDefault:"10000"`

	// Mock data API server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "http://localhost:5173,https://console.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// WanScale returns the parsed TREND_WAN_SCALE.
func (c *Config) WanScale() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.TrendWanScale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid TREND_WAN_SCALE %q: %w", c.TrendWanScale, err)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("TREND_WAN_SCALE must be positive, got %s", d)
	}
	return d, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	switch c.DatasetSource {
	case SourceFixtures, SourceHTTP:
	default:
		return fmt.Errorf("DATASET_SOURCE must be %q or %q, got %q", SourceFixtures, SourceHTTP, c.DatasetSource)
	}
	if c.DatasetSource == SourceHTTP && c.DatasetURL == "" {
		return fmt.Errorf("DATASET_URL is required when DATASET_SOURCE=%s", SourceHTTP)
	}
	if _, err := c.WanScale(); err != nil {
		return err
	}
	return nil
}

// Load parses environment variables and returns a Config.
// Returns an error if a variable is malformed or fails validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
