// Package config loads adsctl's optional YAML configuration file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/config"
)

// Config carries everything the CLI can take from a file instead of flags.
// Values from flags and the environment take precedence; defaulting happens
// in the CLI layer, never inside request construction.
type Config struct {
	DeveloperToken   string   `yaml:"developerToken"`
	AuthToken        string   `yaml:"authToken"`
	LoginCustomerID  string   `yaml:"loginCustomerId"`
	Endpoint         string   `yaml:"endpoint"`
	Version          string   `yaml:"version"`
	DefaultFeedItems []string `yaml:"defaultFeedItems"`
}

// DefaultPath is where LoadDefault looks when no -config flag is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "adsctl", "config.yaml")
}

// Load reads YAML configuration from r. ${VAR} references expand from the
// process environment.
func Load(r io.Reader) (Config, error) {
	var result Config
	yaml, err := config.NewYAML(
		config.Source(r),
		config.Expand(os.LookupEnv),
	)
	if err != nil {
		return result, fmt.Errorf("read yaml config: %w", err)
	}
	if err := yaml.Get(config.Root).Populate(&result); err != nil {
		return result, fmt.Errorf("populate config: %w", err)
	}
	return result, nil
}

// LoadFile loads path. A missing or empty file yields a zero Config without
// error so that flags and environment variables alone are enough to run.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Config{}, nil
	}
	cfg, err := Load(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
