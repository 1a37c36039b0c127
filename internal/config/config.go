// Package config holds the application configuration: where the question
// dataset lives and how the player behaves. Precedence is flags over
// environment over config file over defaults; merging happens in cmd.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Theme names accepted by the UI.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultFile is the config file looked up in the working directory when no
// --config flag is given.
const DefaultFile = "az900quest.yaml"

// Environment variable names.
const (
	EnvData    = "AZ900QUEST_DATA"
	EnvTheme   = "AZ900QUEST_THEME"
	EnvShuffle = "AZ900QUEST_SHUFFLE"
)

// Config is the resolved application configuration.
type Config struct {
	// Data is the dataset source: a CSV file path or an http(s) URL.
	Data string `yaml:"data"`

	// Theme selects the color palette, "dark" or "light".
	Theme string `yaml:"theme"`

	// Shuffle randomizes question order at session start.
	Shuffle bool `yaml:"shuffle"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data:  "az900_questions.csv",
		Theme: ThemeDark,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto cfg.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvData); v != "" {
		cfg.Data = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvShuffle); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Shuffle = b
		}
	}
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if c.Data == "" {
		return fmt.Errorf("data source must not be empty")
	}
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q (want %s or %s)", c.Theme, ThemeDark, ThemeLight)
	}
	return nil
}
