// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// platformEnvFile is a representative deployment environment file: every
// variable of the configuration surface, in its historical export form.
const platformEnvFile = `export TG_METADATA_DB_HOST=localhost
export TG_METADATA_DB_PORT=5433
export TG_METADATA_DB_USER=os_user
export TG_METADATA_DB_PASSWORD=postgres
export TG_METADATA_DB_NAME=demo_db
export TG_METADATA_DB_SCHEMA=demo_schema
export TESTGEN_USERNAME=admin
export TESTGEN_PASSWORD=admin
export TG_DECRYPT_PASSWORD=admin
export TG_DECRYPT_SALT=adminsaltadminsalt
export TG_JWT_HASHING_KEY=adminkey
export TESTGEN_LOG_FILE_PATH=/home/balram/Desktop/testgen/dataops-testgen/logs
`

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnvFile_AllEntries(t *testing.T) {
	// Arrange
	path := writeEnvFile(t, platformEnvFile)

	// Act
	entries, err := LoadEnvFile(path)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 12)

	// file order is preserved
	assert.Equal(t, Entry{Name: "TG_METADATA_DB_HOST", Value: "localhost"}, entries[0])
	assert.Equal(t, Entry{Name: "TG_METADATA_DB_PORT", Value: "5433"}, entries[1])
	assert.Equal(t, Entry{Name: "TG_METADATA_DB_USER", Value: "os_user"}, entries[2])
	assert.Equal(t, Entry{Name: "TG_METADATA_DB_PASSWORD", Value: "postgres"}, entries[3])
	assert.Equal(t, Entry{Name: "TG_METADATA_DB_NAME", Value: "demo_db"}, entries[4])
	assert.Equal(t, Entry{Name: "TG_METADATA_DB_SCHEMA", Value: "demo_schema"}, entries[5])
	assert.Equal(t, Entry{Name: "TESTGEN_USERNAME", Value: "admin"}, entries[6])
	assert.Equal(t, Entry{Name: "TESTGEN_PASSWORD", Value: "admin"}, entries[7])
	assert.Equal(t, Entry{Name: "TG_DECRYPT_PASSWORD", Value: "admin"}, entries[8])
	assert.Equal(t, Entry{Name: "TG_DECRYPT_SALT", Value: "adminsaltadminsalt"}, entries[9])
	assert.Equal(t, Entry{Name: "TG_JWT_HASHING_KEY", Value: "adminkey"}, entries[10])
	assert.Equal(t, Entry{Name: "TESTGEN_LOG_FILE_PATH", Value: "/home/balram/Desktop/testgen/dataops-testgen/logs"}, entries[11])
}

func TestLoadEnvFile_CommentsAndBlankLines(t *testing.T) {
	// Arrange
	path := writeEnvFile(t, `
# metadata database
export TG_METADATA_DB_HOST=localhost

# credentials
TESTGEN_USERNAME=admin
`)

	// Act
	entries, err := LoadEnvFile(path)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "TG_METADATA_DB_HOST", entries[0].Name)
	assert.Equal(t, "TESTGEN_USERNAME", entries[1].Name)
}

func TestLoadEnvFile_Quotes(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"double quotes", `TG_DECRYPT_SALT="admin salt admin 1"`, "admin salt admin 1"},
		{"single quotes", `TG_DECRYPT_SALT='admin salt admin 1'`, "admin salt admin 1"},
		{"no quotes", `TG_DECRYPT_SALT=adminsaltadminsalt`, "adminsaltadminsalt"},
		{"mismatched quotes stay", `TG_DECRYPT_SALT="adminsaltadminsalt'`, `"adminsaltadminsalt'`},
		{"inner quotes stay", `TG_DECRYPT_SALT=admin"salt"adminsalt`, `admin"salt"adminsalt`},
		{"empty value", `TG_DECRYPT_SALT=`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeEnvFile(t, tt.line+"\n")

			entries, err := LoadEnvFile(path)

			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expected, entries[0].Value)
		})
	}
}

func TestLoadEnvFile_MalformedLine(t *testing.T) {
	// Arrange
	path := writeEnvFile(t, "export TG_METADATA_DB_HOST=localhost\nnot a pair\n")

	// Act
	_, err := LoadEnvFile(path)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed line 2")
}

func TestLoadEnvFile_FileNotFound(t *testing.T) {
	_, err := LoadEnvFile("/nonexistent/local.env")
	require.Error(t, err)
}

func TestExport_ByteForByte(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	entries := []Entry{
		{Name: "TG_METADATA_DB_PORT", Value: "5433"},
		{Name: "TESTGEN_LOG_FILE_PATH", Value: "/home/balram/Desktop/testgen/dataops-testgen/logs"},
	}

	// Act
	err := Export(entries)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "5433", os.Getenv("TG_METADATA_DB_PORT"))
	assert.Equal(t, "/home/balram/Desktop/testgen/dataops-testgen/logs", os.Getenv("TESTGEN_LOG_FILE_PATH"))
}

// TestExport_Idempotent verifies that exporting the same entries twice leaves
// the environment in the same state.
func TestExport_Idempotent(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	entries := []Entry{
		{Name: "TG_METADATA_DB_HOST", Value: "localhost"},
		{Name: "TG_METADATA_DB_PORT", Value: "5433"},
	}

	// Act
	require.NoError(t, Export(entries))
	require.NoError(t, Export(entries))

	// Assert
	assert.Equal(t, "localhost", os.Getenv("TG_METADATA_DB_HOST"))
	assert.Equal(t, "5433", os.Getenv("TG_METADATA_DB_PORT"))
}

// TestExport_LastAssignmentWins verifies that a duplicated name resolves to
// its last assignment, mirroring sequential shell exports.
func TestExport_LastAssignmentWins(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	entries := []Entry{
		{Name: "TG_METADATA_DB_PORT", Value: "5432"},
		{Name: "TG_METADATA_DB_PORT", Value: "5433"},
	}

	// Act
	require.NoError(t, Export(entries))

	// Assert
	assert.Equal(t, "5433", os.Getenv("TG_METADATA_DB_PORT"))
}

// TestExport_UnrelatedEnvUntouched verifies that variables not named in the
// entries keep their prior values.
func TestExport_UnrelatedEnvUntouched(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	t.Setenv("UNRELATED_VARIABLE", "keep-me")

	// Act
	err := Export([]Entry{{Name: "TG_METADATA_DB_HOST", Value: "localhost"}})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "keep-me", os.Getenv("UNRELATED_VARIABLE"))
}

func TestExportFile_EndToEnd(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	path := writeEnvFile(t, platformEnvFile)

	// Act
	err := ExportFile(path)

	// Assert
	require.NoError(t, err)

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

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
	assert.Equal(t, "/home/balram/Desktop/testgen/dataops-testgen/logs", cfg.Log.FilePath)
}

func TestExportFile_FileNotFound(t *testing.T) {
	err := ExportFile("/nonexistent/local.env")
	require.Error(t, err)
}

// TestBootstrap_ExportsNamedFile verifies the startup path of both binaries:
// the file named by TESTGEN_ENV_FILE is exported before configuration is
// parsed.
func TestBootstrap_ExportsNamedFile(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	path := writeEnvFile(t, platformEnvFile)
	provider := NewMapProvider(map[string]string{EnvFileVar: path})

	// Act
	err := Bootstrap(provider)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost", os.Getenv("TG_METADATA_DB_HOST"))
	assert.Equal(t, "5433", os.Getenv("TG_METADATA_DB_PORT"))
	assert.Equal(t, "admin", os.Getenv("TESTGEN_USERNAME"))
}

func TestBootstrap_NoFileNamed(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act & Assert: unset and blank are both a no-op
	require.NoError(t, Bootstrap(NewMapProvider(nil)))
	require.NoError(t, Bootstrap(NewMapProvider(map[string]string{EnvFileVar: "  "})))
	assert.Empty(t, os.Getenv("TG_METADATA_DB_HOST"))
}

func TestBootstrap_FileMissing(t *testing.T) {
	provider := NewMapProvider(map[string]string{EnvFileVar: "/nonexistent/local.env"})

	err := Bootstrap(provider)

	require.Error(t, err)
}
