package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fileName is the config file kept in the user's home directory
const fileName = ".coursectl.json"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DataFile    string `json:"data_file,omitempty"`
	AccentColor string `json:"accent_color,omitempty"`
}

// DataPath returns the configured data file, or fallback when none is set.
func (c *AppConfig) DataPath(fallback string) string {
	if c == nil || c.DataFile == "" {
		return fallback
	}
	return c.DataFile
}

// Path returns the absolute path to ~/.coursectl.json
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, fileName), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
