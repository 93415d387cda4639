package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Chat backend connection.
	SeabirdURL   string `env:"SEABIRD_URL,default=https://api.seabird.chat"`
	SeabirdToken string `env:"SEABIRD_TOKEN"`

	// Upstream data sources.
	SolarURL     string        `env:"SOLAR_XML_URL,default=https://www.hamqsl.com/solarxml.php"`
	SpotsURL     string        `env:"POTA_SPOTS_URL,default=https://api.pota.app/v1/spots"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=10s"`

	HTTPAddr        string        `env:"HTTP_ADDR,default=:8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.SeabirdToken == "" {
		return nil, errors.New("SEABIRD_TOKEN is required")
	}
	if cfg.SeabirdURL == "" {
		return nil, errors.New("SEABIRD_URL is required")
	}
	if cfg.SolarURL == "" {
		return nil, errors.New("SOLAR_XML_URL is required")
	}
	if cfg.SpotsURL == "" {
		return nil, errors.New("POTA_SPOTS_URL is required")
	}
	if cfg.FetchTimeout <= 0 {
		return nil, errors.New("invalid FETCH_TIMEOUT")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}

	return &cfg, nil
}
