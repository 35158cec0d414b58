// Package config loads gradecast settings from an optional YAML file and
// GRADECAST_* environment variables. Command-line flags are applied on top
// by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/gradecast/internal/backend"
)

// Config is the full application configuration.
type Config struct {
	Model backend.Config `yaml:"model"`

	// DB is the SQLite file for the backend request log. Empty uses
	// store.DefaultDBPath.
	DB string `yaml:"db"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // empty uses logging.DefaultPath
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Model: backend.DefaultConfig(),
		Log:   LogConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/gradecast/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gradecast", "config.yaml"), nil
}

// Load reads the configuration file at path on top of Default and then
// applies environment overrides. When path is empty DefaultPath is tried
// and a missing file is not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from GRADECAST_* environment variables.
func (c *Config) ApplyEnv() error {
	setFromEnv(&c.Model.Kind, "GRADECAST_BACKEND")
	setFromEnv(&c.Model.Path, "GRADECAST_MODEL_PATH")
	setFromEnv(&c.Model.URL, "GRADECAST_REMOTE_URL")
	setFromEnv(&c.DB, "GRADECAST_DB")
	setFromEnv(&c.Log.Level, "GRADECAST_LOG_LEVEL")
	setFromEnv(&c.Log.File, "GRADECAST_LOG_FILE")

	if v := os.Getenv("GRADECAST_MODEL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GRADECAST_MODEL_TIMEOUT: %w", err)
		}
		c.Model.Timeout = d
	}

	c.Model.LLM.ApplyEnv()
	return nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
