// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the chat client.
//
// Configuration sources, in order of precedence:
//   - Environment variables (MISTRAL_API_KEY, MISTRAL_MODEL)
//   - A .env file in the working directory
//   - ~/.mistral-tui/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete client configuration.
type Config struct {
	// Model is the chat model requested from the API.
	Model string `toml:"model"`

	API APIConfig `toml:"api"`
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// APIConfig contains API connection settings.
type APIConfig struct {
	// Key is the API key. Usually supplied via MISTRAL_API_KEY or .env
	// rather than the config file.
	Key string `toml:"key"`
	// BaseURL overrides the API endpoint, mainly for testing.
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the request timeout (default 60).
	TimeoutSecs int `toml:"timeout_secs"`
	// RequestsPerMinute paces outgoing requests (default 30, 0 disables).
	RequestsPerMinute int `toml:"requests_per_minute"`
}

// UIConfig contains display settings.
type UIConfig struct {
	// Color is "auto", "always", or "never".
	Color string `toml:"color"`
	// Width forces a render width instead of querying the terminal.
	Width int `toml:"width"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `toml:"level"`
	// File overrides the log file path.
	File string `toml:"file"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// appDir is the directory under the user's home that holds config,
// history, and logs.
const appDir = ".mistral-tui"

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Model: "mistral-small",
		API: APIConfig{
			BaseURL:           "https://api.mistral.ai",
			TimeoutSecs:       60,
			RequestsPerMinute: 30,
		},
		UI:  UIConfig{Color: "auto"},
		Log: LogConfig{Level: "info"},
	}
}

// Dir returns the application directory (~/.mistral-tui), creating
// nothing.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}

// EnsureDir creates the application directory if missing.
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return dir, os.MkdirAll(dir, 0700)
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads configuration from all sources. A missing config file or
// .env is not an error; a malformed config file is.
func Load() (*Config, error) {
	// .env values become process env without overriding what is already
	// set, matching dotenv semantics.
	_ = godotenv.Load()

	path, err := Path()
	if err != nil {
		return applyEnv(Default()), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from an explicit file path plus the
// environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	cfg.normalize()
	return applyEnv(cfg), nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *Config) *Config {
	if key := os.Getenv("MISTRAL_API_KEY"); key != "" {
		cfg.API.Key = key
	}
	if model := os.Getenv("MISTRAL_MODEL"); model != "" {
		cfg.Model = model
	}
	return cfg
}

// normalize clamps values a hand-edited file might have broken.
func (c *Config) normalize() {
	if c.Model == "" {
		c.Model = "mistral-small"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://api.mistral.ai"
	}
	if c.API.TimeoutSecs <= 0 {
		c.API.TimeoutSecs = 60
	}
	if c.API.RequestsPerMinute < 0 {
		c.API.RequestsPerMinute = 0
	}
	switch strings.ToLower(c.UI.Color) {
	case "always", "never":
		c.UI.Color = strings.ToLower(c.UI.Color)
	default:
		c.UI.Color = "auto"
	}
	if c.UI.Width < 0 {
		c.UI.Width = 0
	}
}
