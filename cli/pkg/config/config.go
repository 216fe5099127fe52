package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the local grid-cli configuration.
type Config struct {
	Network  string `json:"network"`
	Operator string `json:"operator"`
	ScanURL  string `json:"scan_url,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Network:  "",
		Operator: "",
	}
}

// Manager handles configuration file operations.
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager rooted at the project.
func NewManager(projectRoot string) *Manager {
	return &Manager{
		configPath: filepath.Join(projectRoot, ".grid/config.local.json"),
	}
}

// Load reads the configuration from the .grid file.
func (m *Manager) Load() (*Config, error) {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to the .grid file.
func (m *Manager) Save(config *Config) error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Set updates a specific configuration value.
func (m *Manager) Set(key, value string) error {
	config, err := m.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "network":
		config.Network = value
	case "operator":
		config.Operator = value
	case "scan-url", "scan_url":
		config.ScanURL = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return m.Save(config)
}

// Get retrieves a specific configuration value.
func (m *Manager) Get(key string) (string, error) {
	config, err := m.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "network":
		return config.Network, nil
	case "operator":
		return config.Operator, nil
	case "scan-url", "scan_url":
		return config.ScanURL, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// List returns all configuration values.
func (m *Manager) List() (*Config, error) {
	return m.Load()
}
