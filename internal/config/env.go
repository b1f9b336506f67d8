package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from environment variables.
// Command-line flags take precedence over these.
type Env struct {
	ConfigPath string `env:"TETRIS_CONFIG"`
	DBPath     string `env:"TETRIS_DB"        envDefault:"~/.tetris/scores.db"`
	LogLevel   string `env:"TETRIS_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv parses process-level settings from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
