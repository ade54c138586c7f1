// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Jellyfin JellyfinConfig `toml:"jellyfin"`
	Seerr    *SeerrConfig   `toml:"jellyseerr"`
	Sync     SyncConfig     `toml:"sync"`
	Database DatabaseConfig `toml:"database"`
}

// JellyfinConfig points at the media server.
type JellyfinConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
	UserID string `toml:"user_id"`
}

// SeerrConfig points at the request service. Omitting the section disables
// the acquisition fallback entirely.
type SeerrConfig struct {
	URL      string `toml:"url"`
	APIKey   string `toml:"api_key"`
	Email    string `toml:"email"`
	Password string `toml:"password"`
	UserType string `toml:"user_type"`
}

// SyncConfig tunes reconciliation behavior.
type SyncConfig struct {
	YearFilter      *bool  `toml:"year_filter"` // nil means enabled
	ClearBeforeSync bool   `toml:"clear_before_sync"`
	CoverLimit      int    `toml:"cover_limit"`
	Schedule        string `toml:"schedule"` // cron expression; empty = run once
}

// YearFilterEnabled resolves the optional year_filter toggle.
func (s SyncConfig) YearFilterEnabled() bool {
	return s.YearFilter == nil || *s.YearFilter
}

// DatabaseConfig locates the local run-history database.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// Load reads, parses, and validates the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Sync.CoverLimit == 0 {
		cfg.Sync.CoverLimit = 20
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/listsync.db"
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
