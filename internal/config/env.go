package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from TERMTRIS_* environment variables.
// They become the defaults of the matching command line flags.
type Env struct {
	FPS      int    `env:"TERMTRIS_FPS"       envDefault:"60"`
	Seed     int64  `env:"TERMTRIS_SEED"`
	DB       string `env:"TERMTRIS_DB"`
	Config   string `env:"TERMTRIS_CONFIG"`
	LogFile  string `env:"TERMTRIS_LOG_FILE"`
	LogLevel string `env:"TERMTRIS_LOG_LEVEL" envDefault:"info"`
	SSHAddr  string `env:"TERMTRIS_SSH_ADDR"  envDefault:":23234"`
	HostKey  string `env:"TERMTRIS_HOST_KEY"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
