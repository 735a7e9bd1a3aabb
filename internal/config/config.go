package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all runtime settings.
type Config struct {
	App  AppConfig  `envPrefix:"CLOCK_"`
	HTTP HTTPConfig `envPrefix:"CLOCK_HTTP_"`
	CORS CORSConfig `envPrefix:"CLOCK_CORS_"`
}

type AppConfig struct {
	Environment string `env:"ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"clock-service"`
}

type HTTPConfig struct {
	Host              string        `env:"HOST" envDefault:"0.0.0.0"`
	Port              int           `env:"PORT" envDefault:"8000"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"25s"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	EnableMetrics     bool          `env:"ENABLE_METRICS" envDefault:"true"`
	EnableDocs        bool          `env:"ENABLE_DOCS" envDefault:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Addr returns the listen address in host:port form.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load parses environment variables into Config and performs validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	for i, origin := range cfg.CORS.AllowedOrigins {
		cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the HTTP server cannot start with.
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("CLOCK_HTTP_PORT must be between 1 and 65535, got %d", c.HTTP.Port)
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"CLOCK_HTTP_READ_TIMEOUT", c.HTTP.ReadTimeout},
		{"CLOCK_HTTP_WRITE_TIMEOUT", c.HTTP.WriteTimeout},
		{"CLOCK_HTTP_IDLE_TIMEOUT", c.HTTP.IdleTimeout},
		{"CLOCK_HTTP_READ_HEADER_TIMEOUT", c.HTTP.ReadHeaderTimeout},
		{"CLOCK_HTTP_SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout},
		{"CLOCK_HTTP_REQUEST_TIMEOUT", c.HTTP.RequestTimeout},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", t.name, t.value)
		}
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CLOCK_CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	for i, origin := range c.CORS.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("CLOCK_CORS_ALLOWED_ORIGINS entry %d is blank", i)
		}
	}
	return nil
}
