package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	t.Setenv("TESTGEN_USERNAME", "admin")
	t.Setenv("TESTGEN_PASSWORD", "admin")

	// Act
	cfg, err := GetClientConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServerAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "testgen-cache.db", cfg.DB.DSN)
}

func TestGetClientConfig_EnvOverrides(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	t.Setenv("TESTGEN_USERNAME", "admin")
	t.Setenv("TESTGEN_PASSWORD", "admin")
	t.Setenv("TESTGEN_SERVER_ADDRESS", "http://testgen.internal:9000")
	t.Setenv("TESTGEN_CLIENT_REQUEST_TIMEOUT", "5s")
	t.Setenv("TESTGEN_CLIENT_CACHE_PATH", "/tmp/testgen-cache.db")

	// Act
	cfg, err := GetClientConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://testgen.internal:9000", cfg.Adapter.ServerAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/testgen-cache.db", cfg.DB.DSN)
	assert.Equal(t, "admin", cfg.UI.Username)
	assert.Equal(t, "admin", cfg.UI.Password)
}

func TestGetClientConfig_MissingCredentials(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	_, err := GetClientConfig()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUIConfig)
}
