package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file written at the root of a passbook directory.
const FileName = "passbook.yaml"

// Config represents the top-level passbook.yaml configuration.
type Config struct {
	Bank    BankConfig    `yaml:"bank"`
	Storage StorageConfig `yaml:"storage"`
	Rates   RatesConfig   `yaml:"rates"`
	Git     GitConfig     `yaml:"git"`
}

// BankConfig identifies the branch this book belongs to.
type BankConfig struct {
	Name   string `yaml:"name"`
	Branch string `yaml:"branch,omitempty"`
}

// StorageConfig locates the four collection files.
type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

// RatesConfig holds the fixed monthly interest rate for savings accounts.
// The rate is carried but no workflow applies it yet.
type RatesConfig struct {
	SavingsMonthlyInterest string `yaml:"savings_monthly_interest"`
}

// GitConfig controls committing the data directory after each change.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a passbook.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new book.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{
			Name: bankName,
		},
		Storage: StorageConfig{
			DataDir: "data",
		},
		Rates: RatesConfig{
			SavingsMonthlyInterest: "0.02",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Passbook",
			AuthorEmail: "books@passbook.dev",
		},
	}
}
