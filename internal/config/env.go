package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from QDASH_* variables.
// Command-line flags take precedence when given explicitly.
type Env struct {
	Seed       int64  `env:"QDASH_SEED"`
	FPS        int    `env:"QDASH_FPS"`
	Renderer   string `env:"QDASH_RENDERER" envDefault:"tui"`
	ConfigPath string `env:"QDASH_CONFIG"`
	LogLevel   string `env:"QDASH_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"QDASH_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns the Env populated from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
