package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven runtime settings.
type Config struct {
	// DBPath is the SQLite database location. Empty means the default
	// under the user's home directory.
	DBPath string `env:"TRIPLY_DB"`
	// AdvisorInterval is the advisory loop re-evaluation period.
	AdvisorInterval time.Duration `env:"TRIPLY_ADVISOR_INTERVAL" envDefault:"30s"`
	// NotifyCmd is the desktop notification command.
	NotifyCmd string `env:"TRIPLY_NOTIFY_CMD" envDefault:"notify-send"`
}

// Load parses configuration from environment variables and resolves the
// default database path when TRIPLY_DB is unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".triply", "triply.db")
	}
	if cfg.AdvisorInterval <= 0 {
		return Config{}, fmt.Errorf("advisor interval must be positive, got %s", cfg.AdvisorInterval)
	}
	return cfg, nil
}
