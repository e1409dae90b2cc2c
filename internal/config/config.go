package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoGlobalConfig is returned by LoadGlobal when no settings file exists.
var ErrNoGlobalConfig = errors.New("no global config")

// FileConfig is the on-disk YAML settings shape for ackrc.
type FileConfig struct {
	// Name is the rc base name; files are looked up as .<name> and _<name>.
	Name *string `yaml:"name,omitempty"`
	// EnvVar names the variable that points straight at a user rc file.
	EnvVar *string `yaml:"env_var,omitempty"`
	// SystemPath replaces the system-wide rc path on non-Windows hosts.
	SystemPath *string `yaml:"system_path,omitempty"`

	Format   *string  `yaml:"format,omitempty"`
	NoColor  *bool    `yaml:"no_color,omitempty"`
	LogLevel *string  `yaml:"log_level,omitempty"`
	Exclude  []string `yaml:"exclude,omitempty"`
}

// LoadFile reads a YAML settings file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// GlobalPath returns where the global settings file lives:
// $XDG_CONFIG_HOME/ackrc/config.yml, falling back to ~/.config. It returns ""
// when neither base directory is known.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "ackrc", "config.yml")
}

// LoadGlobal loads the global settings file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p := GlobalPath()
	if p == "" {
		return cfg, errors.New("no config dir")
	}
	if _, err := os.Stat(p); err != nil {
		return cfg, ErrNoGlobalConfig
	}
	return LoadFile(p)
}

// Save writes cfg as YAML to path, refusing to replace an existing file.
func Save(path string, cfg FileConfig) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// GetName returns the configured rc base name or "".
func (fc FileConfig) GetName() string {
	if fc.Name == nil {
		return ""
	}
	return *fc.Name
}

// GetEnvVar returns the configured override variable or "".
func (fc FileConfig) GetEnvVar() string {
	if fc.EnvVar == nil {
		return ""
	}
	return *fc.EnvVar
}

// GetSystemPath returns the configured system rc path or "".
func (fc FileConfig) GetSystemPath() string {
	if fc.SystemPath == nil {
		return ""
	}
	return *fc.SystemPath
}
