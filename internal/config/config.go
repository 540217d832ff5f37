// Package config loads finview.yaml and its environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level finview.yaml configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Cache CacheConfig `yaml:"cache"`
	Paths PathsConfig `yaml:"paths"`
}

// APIConfig locates the backend.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// CacheConfig tunes the query cache.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// PathsConfig locates local state files.
type PathsConfig struct {
	Session   string `yaml:"session"`
	ActionLog string `yaml:"action_log"`
}

// Load reads a finview.yaml file from disk, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
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

// Default returns a Config with sensible defaults.
func Default() *Config {
	home, _ := os.UserHomeDir()
	stateDir := filepath.Join(home, ".finview")
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
		},
		Paths: PathsConfig{
			Session:   filepath.Join(stateDir, "session.yaml"),
			ActionLog: filepath.Join(stateDir, "actions.csv"),
		},
	}
}

// applyEnv overlays FINVIEW_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("FINVIEW_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("FINVIEW_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.API.Timeout = d
		}
	}
	if v := os.Getenv("FINVIEW_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Cache.TTL = d
		}
	}
	if v := os.Getenv("FINVIEW_SESSION_PATH"); v != "" {
		c.Paths.Session = v
	}
	if v := os.Getenv("FINVIEW_ACTION_LOG"); v != "" {
		c.Paths.ActionLog = v
	}
}
