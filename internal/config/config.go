// Package config loads service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration shared by the CLI commands.
type Config struct {
	// Addr is the listen address for the HTTP service.
	Addr string `env:"BLASEFEED_ADDR" envDefault:":8330"`
	// ArchivePath is the SQLite file used by the ingest checkpoint store.
	ArchivePath string `env:"BLASEFEED_ARCHIVE" envDefault:"blasefeed.db"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"BLASEFEED_LOG_LEVEL" envDefault:"info"`
	// VerifyWorkers bounds the number of files verified concurrently.
	VerifyWorkers int `env:"BLASEFEED_VERIFY_WORKERS" envDefault:"4"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the full configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.VerifyWorkers < 1 {
		return Config{}, fmt.Errorf("verify workers must be at least 1, got %d", cfg.VerifyWorkers)
	}
	return cfg, nil
}
