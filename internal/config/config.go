package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string `env:"PORTFOLIO_ADDR"     envDefault:":8080"`
	DataPath   string `env:"PORTFOLIO_DATA_DIR" envDefault:"data"`
	// StaticPath serves client assets from disk instead of the embedded copy
	StaticPath string `env:"PORTFOLIO_STATIC_DIR"`
	BaseURL    string `env:"PORTFOLIO_BASE_URL" envDefault:"http://localhost:8080"`

	LogLevel string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	Dev      bool   `env:"PORTFOLIO_DEV"`
	Watch    bool   `env:"PORTFOLIO_WATCH"`

	ReadTimeout     time.Duration `env:"PORTFOLIO_READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"PORTFOLIO_WRITE_TIMEOUT"    envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env parsing can't
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base URL %q must start with http:// or https://", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return nil
}
