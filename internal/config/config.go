package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

// EnvDBPath overrides every other database path source when set.
const EnvDBPath = "RECON_DB_PATH"

// Config represents the flat recon configuration
type Config struct {
	Version string `json:"version"`
	DBPath  string `json:"db_path,omitempty"`  // absolute path to the sqlite database
	GroupID string `json:"group_id,omitempty"` // default group for commands that omit it
}

var loadEnvOnce sync.Once

// loadEnv reads a .env file from the working directory if one exists.
// Missing files are fine; explicit environment always wins over .env
// entries (godotenv.Load never overwrites existing variables).
func loadEnv() {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// LoadConfig reads .recon/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".recon", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	reconDir := filepath.Join(dir, ".recon")
	if err := os.MkdirAll(reconDir, 0755); err != nil {
		return fmt.Errorf("failed to create .recon dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(reconDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DBPath resolves the sqlite database path.
// Order: RECON_DB_PATH (env or .env) > .recon/config.json in cwd > ~/.recon/recon.db.
func DBPath() (string, error) {
	loadEnv()

	if p := os.Getenv(EnvDBPath); p != "" {
		return p, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		if cfg, err := LoadConfig(cwd); err == nil && cfg.DBPath != "" {
			return cfg.DBPath, nil
		}
	}

	return DefaultDBPath()
}

// DefaultDBPath returns the default database location under the home directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".recon", "recon.db"), nil
}
