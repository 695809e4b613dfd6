package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings that may come from the environment.
// Command-line flags take precedence over these values.
type Env struct {
	DBPath     string `env:"T2048_DB"`
	ConfigPath string `env:"T2048_CONFIG"`
	LogFile    string `env:"T2048_LOG_FILE"`
	Debug      bool   `env:"T2048_DEBUG"`
	Seed       int64  `env:"T2048_SEED"`
	SSHAddr    string `env:"T2048_SSH_ADDR" envDefault:":23234"`
	Difficulty string `env:"T2048_DIFFICULTY"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the T2048_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
