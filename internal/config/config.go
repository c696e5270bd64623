// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     config
// Description: Application settings from TOML/YAML files and environment
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/msto63/libmgr/internal/registry"
)

// Environment variables read by LoadFromEnv and ApplyEnv
const (
	EnvSettings  = "LIBMGR_SETTINGS"
	EnvRegistry  = "LIBMGR_REGISTRY"
	EnvLogLevel  = "LIBMGR_LOG_LEVEL"
	EnvLogFormat = "LIBMGR_LOG_FORMAT"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output"`

	// path of the file the settings came from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Registry  string `toml:"registry" yaml:"registry"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// OutputConfig holds settings for command output
type OutputConfig struct {
	Plain bool `toml:"plain" yaml:"plain"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("settings file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	}

	cfg.source = path
	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv resolves the settings file from LIBMGR_SETTINGS or the default
// locations. No settings file at all yields the defaults. A .env file in the
// working directory is loaded first.
func LoadFromEnv() (*Config, error) {
	loadDotEnv()

	path := os.Getenv(EnvSettings)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides settings with LIBMGR_* environment variables, after
// loading a .env file from the working directory. Variables already set in
// the environment win over .env entries.
func (c *Config) ApplyEnv() {
	loadDotEnv()
	if v := os.Getenv(EnvRegistry); v != "" {
		c.General.Registry = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.General.LogFormat = v
	}
}

// loadDotEnv is idempotent; a missing .env is not an error
func loadDotEnv() {
	_ = godotenv.Load()
}

// Source returns the settings file path, or "" when defaults are in use
func (c *Config) Source() string {
	return c.source
}

func defaultPaths() []string {
	paths := []string{"./libmgr.toml", "./libmgr.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "libmgr", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Registry == "" {
		c.General.Registry = registry.DefaultPath
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.Registry = os.ExpandEnv(c.General.Registry)
}
