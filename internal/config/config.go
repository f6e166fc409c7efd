package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file a finstat directory carries.
const FileName = "finstat.yaml"

// Config represents the top-level finstat.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Sources []string      `yaml:"sources,omitempty"`
}

// LedgerConfig locates the ledger file relative to the finstat directory.
type LedgerConfig struct {
	File string `yaml:"file"`
}

// DisplayConfig controls how amounts are rendered.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// ServerConfig controls the local web dashboard.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads a finstat.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
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

// Default returns a Config with sensible defaults for a new ledger.
// The source labels match the accounts the entry form offers.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			File: "ledger.csv",
		},
		Display: DisplayConfig{
			CurrencySymbol: "$",
		},
		Server: ServerConfig{
			Addr: "localhost:8080",
		},
		Sources: []string{"Cash", "Checking", "Savings", "Credit Card", "Loan", "Investment", "Other"},
	}
}
