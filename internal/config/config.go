package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds the settings of the interactor example programs.
type Config struct {
	// Logging configuration
	LogLevel  string `env:"INTERACTOR_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"INTERACTOR_LOG_FORMAT" envDefault:"console"`

	// Observability
	MetricsAddr      string `env:"INTERACTOR_METRICS_ADDR"`
	MetricsNamespace string `env:"INTERACTOR_METRICS_NAMESPACE" envDefault:"interactor"`
	Tracing          bool   `env:"INTERACTOR_TRACING" envDefault:"false"`

	// Pipeline policy override
	ContinueOnFailure bool `env:"INTERACTOR_CONTINUE_ON_FAILURE" envDefault:"false"`
}

// Load reads configuration from environment variables
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s (must be console or json)", c.LogFormat)
	}

	if c.MetricsAddr != "" && c.MetricsNamespace == "" {
		return fmt.Errorf("metrics namespace is required when metrics are served")
	}

	return nil
}
