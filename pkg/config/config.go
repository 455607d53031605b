// Package config loads and persists the tagpack service
// configuration.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the tagpack configuration.
type Config struct {
	Bind     string   `yaml:"bind"`
	Port     int      `yaml:"port"`
	CacheDir string   `yaml:"cache_dir"`
	Security Security `yaml:"security"`
	Codec    Codec    `yaml:"codec"`
	Logging  Logging  `yaml:"logging"`
}

// Security contains security-related configuration.
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Codec contains encoder and backend configuration.
type Codec struct {
	// Backend selects the implementation: "auto" tries the accelerated
	// service and falls back to the reference codec, "reference" skips
	// the attempt entirely.
	Backend string `yaml:"backend"`

	// WideIntegers and DoublePrecision opt into the 8-byte numeric
	// wire forms. Both change the bytes on the wire; leave them off
	// when peers expect the default format.
	WideIntegers    bool `yaml:"wide_integers"`
	DoublePrecision bool `yaml:"double_precision"`

	// Compression names the transport compression algorithm applied
	// by the CLI and HTTP surfaces: "none", "s2" or "lz4".
	Compression      string `yaml:"compression"`
	CompressionLevel int    `yaml:"compression_level"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Bind:     "127.0.0.1",
		Port:     9270,
		CacheDir: "./cache",
		Security: Security{
			APIKey: "auto",
		},
		Codec: Codec{
			Backend:     "auto",
			Compression: "none",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path with secure
// permissions.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file carries the API key, so keep it private.
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key.
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key
// and persists it.
func BootstrapConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	apiKey, err := GenerateSecureKey(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the
// current platform.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./tagpack.yaml"
	}
	return filepath.Join(homeDir, ".config", "tagpack", "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
