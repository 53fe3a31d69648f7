package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"justfetch/internal/errors"
)

const (
	// AppDirName is the directory holding justfetch files under the config home.
	AppDirName = "JustFetch"

	// TemplateFileName is the template file inside AppDirName.
	TemplateFileName = "config"
)

// SettingsFileNames are tried in order inside AppDirName.
var SettingsFileNames = []string{"settings.toml", "settings.yaml", "settings.yml"}

// Paths are the resolved file locations for one run.
type Paths struct {
	ConfigDir string // Directory searched for the template and settings
	Template  string // Template file; may not exist
	Settings  string // Settings file; may not exist
}

// ResolvePaths works out file locations from the environment, an optional
// template override (the --config flag) and the platform config home.
func ResolvePaths(e *Env, templateOverride string) (Paths, error) {
	return resolvePaths(e, templateOverride, xdg.ConfigHome)
}

func resolvePaths(e *Env, templateOverride, configHome string) (Paths, error) {
	var p Paths

	dirs := []string{filepath.Join(configHome, AppDirName)}
	if e.Home != "" {
		legacy := filepath.Join(e.Home, ".config", AppDirName)
		if legacy != dirs[0] {
			dirs = append(dirs, legacy)
		}
	}
	p.ConfigDir = dirs[0]
	for _, dir := range dirs {
		if exists(filepath.Join(dir, TemplateFileName)) {
			p.ConfigDir = dir
			break
		}
	}

	var err error
	switch {
	case templateOverride != "":
		p.Template, err = ExpandHome(templateOverride, e.Home)
	case e.TemplatePath != "":
		p.Template, err = ExpandHome(e.TemplatePath, e.Home)
	default:
		p.Template = filepath.Join(p.ConfigDir, TemplateFileName)
	}
	if err != nil {
		return p, err
	}

	if e.SettingsPath != "" {
		p.Settings, err = ExpandHome(e.SettingsPath, e.Home)
		return p, err
	}
	p.Settings = filepath.Join(p.ConfigDir, SettingsFileNames[0])
	for _, name := range SettingsFileNames {
		if candidate := filepath.Join(p.ConfigDir, name); exists(candidate) {
			p.Settings = candidate
			break
		}
	}
	return p, nil
}

// ExpandHome expands a leading ~ to home.
// Returns an error if the path needs a home directory and none is known.
func ExpandHome(path, home string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if home == "" {
		return "", errors.Newf(errors.ErrConfigLoad, "cannot expand %s: HOME is not set", path)
	}
	return home + path[1:], nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
