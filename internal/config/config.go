package config

import (
	"github.com/rs/zerolog"
)

// Config is everything resolved from the environment and config files.
type Config struct {
	Env      *Env
	Paths    Paths
	Settings *Settings
	Template Template
}

// Load resolves paths, settings and the template. templateOverride is the
// value of the --config flag, or empty.
func Load(e *Env, templateOverride string, logger zerolog.Logger) (*Config, error) {
	paths, err := ResolvePaths(e, templateOverride)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("template", paths.Template).
		Str("settings", paths.Settings).
		Msg("Resolved config paths")

	settings, err := LoadSettings(paths.Settings)
	if err != nil {
		return nil, err
	}
	tmpl, err := LoadTemplate(paths.Template, logger)
	if err != nil {
		return nil, err
	}

	return &Config{Env: e, Paths: paths, Settings: settings, Template: tmpl}, nil
}
