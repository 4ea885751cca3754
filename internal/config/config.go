package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "pocketbook.yaml"

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "POCKETBOOK_CONFIG"

// Config represents the top-level pocketbook.yaml configuration.
type Config struct {
	Owner   OwnerConfig   `yaml:"owner"`
	Savings SavingsConfig `yaml:"savings"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

// OwnerConfig identifies whose allowance book this is.
type OwnerConfig struct {
	Name string `yaml:"name"`
}

// SavingsConfig holds the initial savings goal in whole currency units.
type SavingsConfig struct {
	Goal int64 `yaml:"goal"`
}

// ExportConfig controls where CSV exports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a pocketbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default("").
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks values the book would reject.
func (c *Config) Validate() error {
	if c.Savings.Goal < 0 {
		return fmt.Errorf("savings.goal must not be negative, got %d", c.Savings.Goal)
	}
	return nil
}

// Default returns a Config with sensible defaults. An empty owner name
// falls back to "Taro".
func Default(ownerName string) *Config {
	if ownerName == "" {
		ownerName = "Taro"
	}
	return &Config{
		Owner: OwnerConfig{
			Name: ownerName,
		},
		Savings: SavingsConfig{
			Goal: 1000,
		},
		Export: ExportConfig{
			Dir: "exports",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
