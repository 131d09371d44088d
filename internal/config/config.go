// Package config loads quadro's YAML configuration and environment overrides
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/quadro/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database"`
	Log         LogConfig          `yaml:"log"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig locates the SQLite database
type DatabaseConfig struct {
	// Path to the database file; empty means ~/.quadro/quadro.db
	Path string `yaml:"path" env:"QUADRO_DB_PATH"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" env:"QUADRO_LOG_LEVEL"` // debug, info, warn or error
	Path  string `yaml:"path" env:"QUADRO_LOG_PATH"`   // empty means ~/.quadro/logs/quadro.log
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from QUADRO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("QUADRO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory, then applies
// QUADRO_* environment overrides.
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
			// Defaults only
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", configPath, err)
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Load theme from QUADRO_THEME_FILE if set
	loadThemeFile(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quadro", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "quadro", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.ColorScheme.ApplyDefaults()
}
