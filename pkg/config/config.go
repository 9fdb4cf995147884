// Package config loads optional user defaults for the tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-level defaults. Command-line flags take precedence over
// everything here.
type Config struct {
	// Model is the default model tier for analysis.
	Model string `yaml:"model"`

	// Debug enables development logging on stderr.
	Debug bool `yaml:"debug"`

	// PollIntervalMS overrides how often the recorder checks for open pages.
	PollIntervalMS int `yaml:"poll_interval_ms"`
}

const defaultPollIntervalMS = 500

// Default returns the built-in configuration.
func Default() Config {
	return Config{PollIntervalMS: defaultPollIntervalMS}
}

// DefaultPath returns ~/.reverse-api/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".reverse-api", "config.yaml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.PollIntervalMS <= 0 {
		cfg.PollIntervalMS = defaultPollIntervalMS
	}
	return cfg, nil
}
