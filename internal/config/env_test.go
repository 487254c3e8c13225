// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"TESTGEN_CONFIG": "/path/to/config.json",

		"TG_METADATA_DB_HOST":     "localhost",
		"TG_METADATA_DB_PORT":     "5433",
		"TG_METADATA_DB_USER":     "os_user",
		"TG_METADATA_DB_PASSWORD": "postgres",
		"TG_METADATA_DB_NAME":     "demo_db",
		"TG_METADATA_DB_SCHEMA":   "demo_schema",

		"TESTGEN_USERNAME": "admin",
		"TESTGEN_PASSWORD": "admin",

		"TG_DECRYPT_PASSWORD": "admin",
		"TG_DECRYPT_SALT":     "adminsaltadminsalt",

		"TG_JWT_HASHING_KEY":     "adminkey",
		"TESTGEN_TOKEN_ISSUER":   "test_issuer",
		"TESTGEN_TOKEN_DURATION": "1h",

		"TESTGEN_LOG_FILE_PATH": "/home/balram/Desktop/testgen/dataops-testgen/logs",

		"TESTGEN_ADDRESS":         "localhost:8080",
		"TESTGEN_REQUEST_TIMEOUT": "30s",

		"TESTGEN_SCORE_REFRESH_INTERVAL": "15m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5433", cfg.DB.Port)
	assert.Equal(t, "os_user", cfg.DB.User)
	assert.Equal(t, "postgres", cfg.DB.Password)
	assert.Equal(t, "demo_db", cfg.DB.Name)
	assert.Equal(t, "demo_schema", cfg.DB.Schema)

	assert.Equal(t, "admin", cfg.UI.Username)
	assert.Equal(t, "admin", cfg.UI.Password)

	assert.Equal(t, "admin", cfg.Crypto.DecryptPassword)
	assert.Equal(t, "adminsaltadminsalt", cfg.Crypto.DecryptSalt)

	assert.Equal(t, "adminkey", cfg.Auth.HashingKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)

	assert.Equal(t, "/home/balram/Desktop/testgen/dataops-testgen/logs", cfg.Log.FilePath)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 15*time.Minute, cfg.Workers.ScoreRefreshInterval)
}

// TestParseEnv_PortStaysString pins the port down as an uninterpreted string:
// "5433" must come back exactly as set, never normalised or converted.
func TestParseEnv_PortStaysString(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"TG_METADATA_DB_PORT": "5433",
	})

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "5433", cfg.DB.Port)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"TG_METADATA_DB_HOST": "localhost",
		"TESTGEN_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// DB partially filled
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Empty(t, cfg.DB.Port)
	assert.Empty(t, cfg.DB.User)
	assert.Empty(t, cfg.DB.Password)
	assert.Empty(t, cfg.DB.Name)

	// Server partially filled
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others untouched
	assert.Equal(t, UIConfig{}, cfg.UI)
	assert.Equal(t, CryptoConfig{}, cfg.Crypto)
	assert.Equal(t, AuthConfig{}, cfg.Auth)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, DBConfig{}, cfg.DB)
	assert.Equal(t, UIConfig{}, cfg.UI)
	assert.Equal(t, CryptoConfig{}, cfg.Crypto)
	assert.Equal(t, AuthConfig{}, cfg.Auth)
	assert.Equal(t, LogConfig{}, cfg.Log)
	assert.Equal(t, ServerConfig{}, cfg.Server)
	assert.Equal(t, WorkersConfig{}, cfg.Workers)
}

// TestParseEnv_Idempotent verifies that loading twice from the same
// environment yields the same configuration.
func TestParseEnv_Idempotent(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"TG_METADATA_DB_HOST":   "localhost",
		"TG_METADATA_DB_PORT":   "5433",
		"TESTGEN_LOG_FILE_PATH": "/home/balram/Desktop/testgen/dataops-testgen/logs",
	})

	// Act
	first := &Config{}
	require.NoError(t, parseEnv(first))
	second := &Config{}
	require.NoError(t, parseEnv(second))

	// Assert
	assert.Equal(t, first, second)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"TESTGEN_TOKEN_DURATION": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"TESTGEN_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &Config{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"TESTGEN_CONFIG",
		"TESTGEN_ENV_FILE",

		"TG_METADATA_DB_HOST",
		"TG_METADATA_DB_PORT",
		"TG_METADATA_DB_USER",
		"TG_METADATA_DB_PASSWORD",
		"TG_METADATA_DB_NAME",
		"TG_METADATA_DB_SCHEMA",

		"TESTGEN_USERNAME",
		"TESTGEN_PASSWORD",

		"TG_DECRYPT_PASSWORD",
		"TG_DECRYPT_SALT",

		"TG_JWT_HASHING_KEY",
		"TESTGEN_TOKEN_ISSUER",
		"TESTGEN_TOKEN_DURATION",

		"TESTGEN_LOG_FILE_PATH",

		"TESTGEN_ADDRESS",
		"TESTGEN_REQUEST_TIMEOUT",

		"TESTGEN_SCORE_REFRESH_INTERVAL",

		"TESTGEN_SERVER_ADDRESS",
		"TESTGEN_CLIENT_REQUEST_TIMEOUT",
		"TESTGEN_CLIENT_CACHE_PATH",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
