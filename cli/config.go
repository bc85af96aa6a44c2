package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-driven runtime configuration.
type Config struct {
	// SaveDir is where in-game save/load read and write their files.
	SaveDir string `env:"FABLE_SAVE_DIR" envDefault:"."`
	// Plain forces the line-based CLI even on a terminal.
	Plain bool `env:"FABLE_PLAIN"`
	// WrapWidth is the column the plain CLI wraps output at.
	WrapWidth int `env:"FABLE_WRAP_WIDTH" envDefault:"78"`
}

// LoadConfig parses FABLE_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
