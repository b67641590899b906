package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var configKeys = []string{
	"HAMROPATRO_URL", "HAMROPATRO_USER_AGENT", "REQUEST_TIMEOUT", "REFRESH_INTERVAL",
	"DATE_FORMAT_MODE", "HISTORY_RETENTION_DAYS", "ABOUT_URL", "BOT_TOKEN", "ALLOWED_USERS",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
}

// clearEnv blanks every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
	assert.True(t, cfg.DatabaseEnabled())
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "https://www.hamropatro.com/getMethod.php", cfg.Resolver.Endpoint)
	assert.Equal(t, defaultUserAgent, cfg.Resolver.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.Resolver.Timeout)
	assert.Equal(t, 300*time.Second, cfg.RefreshInterval)
	assert.Equal(t, ModePassthrough, cfg.Mode)
	assert.Equal(t, 60, cfg.HistoryRetentionDays)
	assert.Empty(t, cfg.BotToken)
	assert.Empty(t, cfg.AllowedUsers)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "nepalidate", cfg.Database.Name)
	assert.Equal(t, "nepalidate", cfg.Database.User)
	assert.False(t, cfg.DatabaseEnabled())
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("REFRESH_INTERVAL", "1m")
	t.Setenv("DATE_FORMAT_MODE", "Structured")
	t.Setenv("ALLOWED_USERS", "123, 456,")
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Resolver.Timeout)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, ModeStructured, cfg.Mode)
	assert.Equal(t, []int64{123, 456}, cfg.AllowedUsers)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.True(t, cfg.DatabaseEnabled())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		value       string
		expectedMsg string
	}{
		{
			name:        "bad timeout",
			key:         "REQUEST_TIMEOUT",
			value:       "soon",
			expectedMsg: "REQUEST_TIMEOUT",
		},
		{
			name:        "timeout above range",
			key:         "REQUEST_TIMEOUT",
			value:       "10m",
			expectedMsg: "REQUEST_TIMEOUT must be between 5s and 10s",
		},
		{
			name:        "timeout below range",
			key:         "REQUEST_TIMEOUT",
			value:       "1s",
			expectedMsg: "REQUEST_TIMEOUT must be between 5s and 10s",
		},
		{
			name:        "negative interval",
			key:         "REFRESH_INTERVAL",
			value:       "-5m",
			expectedMsg: "REFRESH_INTERVAL",
		},
		{
			name:        "zero retention",
			key:         "HISTORY_RETENTION_DAYS",
			value:       "0",
			expectedMsg: "HISTORY_RETENTION_DAYS",
		},
		{
			name:        "unknown mode",
			key:         "DATE_FORMAT_MODE",
			value:       "fancy",
			expectedMsg: "DATE_FORMAT_MODE",
		},
		{
			name:        "bad user id",
			key:         "ALLOWED_USERS",
			value:       "123,abc",
			expectedMsg: "ALLOWED_USERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expectedMsg)
		})
	}
}
