package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Bank      BankConfig      `yaml:"bank"`
	Allocator AllocatorConfig `yaml:"allocator"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
}

// BankConfig identifies the bank and how amounts are rendered.
type BankConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // symbol prefixed to rendered amounts
}

// AllocatorConfig controls account number allocation.
type AllocatorConfig struct {
	Seed int64 `yaml:"seed"` // 0 = derive from the clock
}

// DefaultsConfig holds the values the menu offers when a prompt is left
// blank.
type DefaultsConfig struct {
	SavingsRate    float64 `yaml:"savings_rate"`    // percent
	OverdraftLimit float64 `yaml:"overdraft_limit"` // currency amount
}

// Load reads a teller.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Bank.Currency == "" {
		cfg.Bank.Currency = "$"
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new session.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Name:     "Teller",
			Currency: "$",
		},
		Defaults: DefaultsConfig{
			SavingsRate:    2.5,
			OverdraftLimit: 100,
		},
	}
}
