package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Review ReviewConfig `json:"review"`
	Refs   RefsConfig   `json:"refs"`
}

// ReviewConfig holds review-server settings.
type ReviewConfig struct {
	// URLPrefixes lists the remote URL schemes accepted as review servers.
	URLPrefixes []string `json:"urlPrefixes"`
	// DefaultDomain is appended to reviewer names given without a domain.
	DefaultDomain string `json:"defaultDomain"`
}

// RefsConfig holds branch handling options.
type RefsConfig struct {
	// IgnoreBranches lists glob patterns for branch names that never count
	// as containment candidates during upstream resolution.
	IgnoreBranches []string `json:"ignoreBranches"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Review: ReviewConfig{
			URLPrefixes:   []string{"sso://"},
			DefaultDomain: "google.com",
		},
		Refs: RefsConfig{
			IgnoreBranches: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults. With an
// empty path it tries .gerritup.json in repoDir, then in the home directory,
// and falls back to pure defaults when neither exists.
func LoadConfig(path, repoDir string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{filepath.Join(repoDir, ".gerritup.json")}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gerritup.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
