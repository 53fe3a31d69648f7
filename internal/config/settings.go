package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"justfetch/internal/color"
	"justfetch/internal/errors"
)

// Settings are the tunables read from the optional settings file.
type Settings struct {
	Marker        string        `koanf:"marker"`
	Sentinel      string        `koanf:"sentinel"`
	Color         string        `koanf:"color"`
	Shell         string        `koanf:"shell"`
	WatchInterval time.Duration `koanf:"watch_interval"`
	Listen        string        `koanf:"listen"`
}

// Characters that would break out of the double-quoted batch command.
const shellSpecial = "\"$`\\\n\r"

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"marker":         "$cmd=",
		"sentinel":       " %split%",
		"color":          string(color.ModeAuto),
		"shell":          "sh",
		"watch_interval": "2s",
		"listen":         "127.0.0.1:8080",
	}
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() *Settings {
	s, err := LoadSettings("")
	if err != nil {
		panic(err) // defaults are constant
	}
	return s
}

// LoadSettings reads the settings file at path over the defaults. A path
// that does not exist leaves the defaults untouched.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			parser, perr := parserFor(path)
			if perr != nil {
				return nil, perr
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse settings file %s", path).
					WithDetail("path", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat settings file %s", path).
				WithDetail("path", path)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings").
			WithDetail("path", path)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigParse, "unsupported settings format %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// Validate checks that the settings can be used by the resolver.
func (s *Settings) Validate() error {
	if s.Marker == "" {
		return invalid("marker", "must not be empty")
	}
	if strings.ContainsAny(s.Marker, "\n\r") {
		return invalid("marker", "must not contain line breaks")
	}
	if s.Sentinel == "" {
		return invalid("sentinel", "must not be empty")
	}
	if strings.ContainsAny(s.Sentinel, shellSpecial) {
		return invalid("sentinel", "must not contain quotes, $, backticks, backslashes or line breaks")
	}
	if _, err := color.ParseMode(s.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid setting color").WithDetail("key", "color")
	}
	if strings.TrimSpace(s.Shell) == "" {
		return invalid("shell", "must not be empty")
	}
	if s.WatchInterval <= 0 {
		return invalid("watch_interval", "must be positive")
	}
	if s.Listen == "" {
		return invalid("listen", "must not be empty")
	}
	return nil
}

// ColorMode returns the parsed color mode. Validate must have passed.
func (s *Settings) ColorMode() color.Mode {
	m, _ := color.ParseMode(s.Color)
	return m
}

func invalid(key, reason string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid setting %s: %s", key, reason).WithDetail("key", key)
}
