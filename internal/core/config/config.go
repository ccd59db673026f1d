// Package config handles configuration loading and validation for the trial
// annotation tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Artifact filenames inside each per-trial directory.
const (
	VideoFilename    = "video.mp4"
	AnalysisFilename = "ai-analysis.json"
)

// Config holds the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	// ReviewerID is the identity stamped on annotations created through
	// this instance. Single-reviewer is a scope boundary; there is no
	// auth layer.
	ReviewerID string `yaml:"reviewer_id"`
	DataDir    string `yaml:"-"` // set by caller, not from config file
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// FixturesConfig controls the in-memory demo dataset.
type FixturesConfig struct {
	// Enabled loads the deterministic fixture trials at startup. Disable
	// to serve only what the data directory contains.
	Enabled *bool `yaml:"enabled"`
}

// FixturesEnabled resolves the tri-state flag; fixtures default to on.
func (c *Config) FixturesEnabled() bool {
	return c.Fixtures.Enabled == nil || *c.Fixtures.Enabled
}

// TrialsDir returns the trials root inside the data directory.
func (c *Config) TrialsDir() string {
	return filepath.Join(c.DataDir, "trials")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		ReviewerID: "rev-001",
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
