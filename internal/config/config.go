package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "reconcile.yaml"

// Config represents the top-level reconcile.yaml configuration.
type Config struct {
	Backend  BackendConfig  `yaml:"backend"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// BackendConfig identifies the reconciliation backend.
type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	CSRFToken      string `yaml:"csrf_token,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultsConfig holds per-user workspace defaults.
type DefaultsConfig struct {
	BankAccountID string `yaml:"bank_account_id,omitempty"`
	StatusFilter  string `yaml:"status_filter"`
}

// Load reads a reconcile.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config %s: backend.base_url is required", path)
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

// Default returns a Config with sensible defaults for a new workspace.
func Default(baseURL string) *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:        baseURL,
			TimeoutSeconds: 30,
		},
		Defaults: DefaultsConfig{
			StatusFilter: "ALL",
		},
	}
}
