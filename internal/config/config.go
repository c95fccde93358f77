package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kernelops/taintinfo/internal/taint"
)

// Config controls where the taint status is read from and how output is
// colorized.
type Config struct {
	Source string `yaml:"source"`
	Color  string `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: taint.DefaultSourcePath,
		Color:  "auto",
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Source == "" {
		cfg.Source = taint.DefaultSourcePath
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %s", c.Color)
	}
	return nil
}
