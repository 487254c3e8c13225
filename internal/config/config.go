// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"time"
)

// Config is the top-level configuration container for the testgen service.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// Env tags use the exact variable names of the platform's configuration
// surface; they carry no prefix because the names are a fixed external
// contract.
type Config struct {
	// DB holds the metadata database connection settings.
	DB DBConfig

	// UI holds the application UI login credentials.
	UI UIConfig

	// Crypto holds the passphrase and salt the secret cipher derives its
	// key from.
	Crypto CryptoConfig

	// Auth holds JWT signing settings for API authentication.
	Auth AuthConfig

	// Log holds log output settings.
	Log LogConfig

	// Server holds network address and timeout settings for the HTTP server.
	Server ServerConfig

	// Workers holds configuration for background worker processes.
	Workers WorkersConfig

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	JSONFilePath string `env:"TESTGEN_CONFIG"`
}

// DBConfig holds connection settings for the PostgreSQL metadata database.
//
// Port is kept as a string: the configuration surface defines every value as
// an uninterpreted string and the port is only ever concatenated into a DSN.
type DBConfig struct {
	// Host is the database host name or address.
	// Env: TG_METADATA_DB_HOST
	Host string `env:"TG_METADATA_DB_HOST"`

	// Port is the database port, uninterpreted (e.g. "5433").
	// Env: TG_METADATA_DB_PORT
	Port string `env:"TG_METADATA_DB_PORT"`

	// User is the database role used for all metadata access.
	// Env: TG_METADATA_DB_USER
	User string `env:"TG_METADATA_DB_USER"`

	// Password is the database password. Must be kept confidential.
	// Env: TG_METADATA_DB_PASSWORD
	Password string `env:"TG_METADATA_DB_PASSWORD"`

	// Name is the database name.
	// Env: TG_METADATA_DB_NAME
	Name string `env:"TG_METADATA_DB_NAME"`

	// Schema is the schema holding the platform's metadata tables. When
	// non-empty it becomes the connection's search_path.
	// Env: TG_METADATA_DB_SCHEMA
	Schema string `env:"TG_METADATA_DB_SCHEMA"`
}

// DSN assembles the PostgreSQL connection string from the six discrete
// values of the configuration surface. The schema, when set, is passed as
// the search_path runtime parameter.
func (d DBConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Name,
	}

	q := url.Values{}
	if d.Schema != "" {
		q.Set("search_path", d.Schema)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// UIConfig holds the application UI login credentials. The platform has a
// single operator account configured through the environment.
type UIConfig struct {
	// Username is the UI login.
	// Env: TESTGEN_USERNAME
	Username string `env:"TESTGEN_USERNAME"`

	// Password is the UI password. Must be kept confidential.
	// Env: TESTGEN_PASSWORD
	Password string `env:"TESTGEN_PASSWORD"`
}

// CryptoConfig holds the key-derivation inputs for the secret cipher that
// protects stored source-database credentials.
type CryptoConfig struct {
	// DecryptPassword is the encryption passphrase. Must be kept
	// confidential.
	// Env: TG_DECRYPT_PASSWORD
	DecryptPassword string `env:"TG_DECRYPT_PASSWORD"`

	// DecryptSalt is the key-derivation salt. Must be at least
	// MinDecryptSaltLength characters.
	// Env: TG_DECRYPT_SALT
	DecryptSalt string `env:"TG_DECRYPT_SALT"`
}

// AuthConfig holds JWT parameters for API authentication.
type AuthConfig struct {
	// HashingKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: TG_JWT_HASHING_KEY
	HashingKey string `env:"TG_JWT_HASHING_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated on every authenticated request.
	// Env: TESTGEN_TOKEN_ISSUER
	TokenIssuer string `env:"TESTGEN_TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: TESTGEN_TOKEN_DURATION
	TokenDuration time.Duration `env:"TESTGEN_TOKEN_DURATION"`
}

// LogConfig holds log output settings.
type LogConfig struct {
	// FilePath is the directory log files are written into. When empty,
	// logs go to stdout only. The path is used verbatim; no existence
	// check is performed at configuration time.
	// Env: TESTGEN_LOG_FILE_PATH
	FilePath string `env:"TESTGEN_LOG_FILE_PATH"`
}

// ServerConfig holds network and timeout settings for the HTTP server.
type ServerConfig struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: TESTGEN_ADDRESS
	HTTPAddress string `env:"TESTGEN_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: TESTGEN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"TESTGEN_REQUEST_TIMEOUT"`
}

// WorkersConfig holds configuration for background worker processes.
type WorkersConfig struct {
	// ScoreRefreshInterval is how often the score-refresh worker
	// recalculates cached scorecards. Zero disables the worker.
	// Env: TESTGEN_SCORE_REFRESH_INTERVAL
	ScoreRefreshInterval time.Duration `env:"TESTGEN_SCORE_REFRESH_INTERVAL"`
}

// GetConfig loads, merges, and validates the service configuration from all
// available sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
