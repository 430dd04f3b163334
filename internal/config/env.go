// Package config reads tool defaults from the environment. Command-line
// flags take precedence over anything set here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds PICKPRIMERS_* defaults.
type Env struct {
	Output       string `env:"PICKPRIMERS_OUTPUT" envDefault:"text"`
	DimerMode    string `env:"PICKPRIMERS_DIMER_MODE" envDefault:"complement"`
	Quiet        bool   `env:"PICKPRIMERS_QUIET"`
	FailExitCode int    `env:"PICKPRIMERS_FAIL_EXIT_CODE" envDefault:"1"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ParseEnvMap loads Env from vars instead of the process environment.
func ParseEnvMap(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
