package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validUserTypes = map[string]bool{
	"local": true, "plex": true, "jellyfin": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if c.Jellyfin.URL == "" {
		errs = append(errs, "jellyfin.url: required")
	}
	if c.Jellyfin.APIKey == "" {
		errs = append(errs, "jellyfin.api_key: required")
	}
	if c.Jellyfin.UserID == "" {
		errs = append(errs, "jellyfin.user_id: required")
	}

	if c.Seerr != nil {
		if c.Seerr.URL == "" {
			errs = append(errs, "jellyseerr.url: required when jellyseerr is configured")
		}
		hasSession := c.Seerr.Email != "" && c.Seerr.Password != ""
		if c.Seerr.APIKey == "" && !hasSession {
			errs = append(errs, "jellyseerr: either api_key or email and password are required")
		}
		if !validUserTypes[c.Seerr.UserType] {
			errs = append(errs, fmt.Sprintf("jellyseerr.user_type: must be one of local, plex, jellyfin; got %q", c.Seerr.UserType))
		}
	}

	if c.Sync.CoverLimit < 0 {
		errs = append(errs, fmt.Sprintf("sync.cover_limit: must not be negative, got %d", c.Sync.CoverLimit))
	}
	if c.Sync.Schedule != "" {
		if _, err := cron.ParseStandard(c.Sync.Schedule); err != nil {
			errs = append(errs, fmt.Sprintf("sync.schedule: invalid cron expression %q: %v", c.Sync.Schedule, err))
		}
	}

	return errs
}
