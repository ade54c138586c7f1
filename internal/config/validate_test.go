package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func validConfig() *Config {
	return &Config{
		Jellyfin: JellyfinConfig{
			URL:    "http://localhost:8096",
			APIKey: "test-key",
			UserID: "user-1",
		},
	}
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig().Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_MissingJellyfin(t *testing.T) {
	cfg := &Config{}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "jellyfin.url"), "expected url error, got %v", errs)
	assert.True(t, containsError(errs, "jellyfin.api_key"), "expected api_key error, got %v", errs)
	assert.True(t, containsError(errs, "jellyfin.user_id"), "expected user_id error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log_level"), "expected log_level error, got %v", errs)
}

func TestValidate_SeerrWithoutCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Seerr = &SeerrConfig{URL: "http://localhost:5055"}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "api_key or email"), "expected credentials error, got %v", errs)
}

func TestValidate_SeerrAPIKeyOnly(t *testing.T) {
	cfg := validConfig()
	cfg.Seerr = &SeerrConfig{URL: "http://localhost:5055", APIKey: "key"}
	errs := cfg.Validate()
	assert.Empty(t, errs)
}

func TestValidate_SeerrEmailWithoutPassword(t *testing.T) {
	cfg := validConfig()
	cfg.Seerr = &SeerrConfig{URL: "http://localhost:5055", Email: "admin@example.com"}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "email and password"), "expected credentials error, got %v", errs)
}

func TestValidate_SeerrInvalidUserType(t *testing.T) {
	cfg := validConfig()
	cfg.Seerr = &SeerrConfig{URL: "http://localhost:5055", APIKey: "key", UserType: "ldap"}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "user_type"), "expected user_type error, got %v", errs)
}

func TestValidate_NegativeCoverLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.CoverLimit = -1
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cover_limit"), "expected cover_limit error, got %v", errs)
}

func TestValidate_InvalidSchedule(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.Schedule = "not a cron expression"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "sync.schedule"), "expected schedule error, got %v", errs)
}

func TestValidate_ValidSchedule(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.Schedule = "0 3 * * *"
	errs := cfg.Validate()
	assert.Empty(t, errs)
}
