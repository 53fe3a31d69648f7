package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Env holds the environment variables justfetch reads.
type Env struct {
	Home         string `env:"HOME"`
	Shell        string `env:"SHELL"`
	TemplatePath string `env:"JUSTFETCH_CONFIG"`
	SettingsPath string `env:"JUSTFETCH_SETTINGS"`
	NoColor      string `env:"NO_COLOR"`
	LogLevel     string `env:"JUSTFETCH_LOG_LEVEL" envDefault:"warn"`
}

// LoadEnv parses the process environment.
func LoadEnv() (*Env, error) {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// LoadEnvFrom parses vars instead of the process environment.
func LoadEnvFrom(vars map[string]string) (*Env, error) {
	e := &Env{}
	if err := env.ParseWithOptions(e, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// ColorDisabled reports whether NO_COLOR is set to a non-empty value.
func (e *Env) ColorDisabled() bool {
	return e.NoColor != ""
}
