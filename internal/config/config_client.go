package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the CLI transport layer.
type ClientAdapter struct {
	// ServerAddress is the base URL of the testgen API, e.g.
	// "http://localhost:8080".
	ServerAddress string `env:"TESTGEN_SERVER_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"TESTGEN_CLIENT_REQUEST_TIMEOUT"`
}

// ClientDB contains local cache database settings for the CLI.
type ClientDB struct {
	// DSN is the SQLite file path the CLI caches scorecards in.
	DSN string `env:"TESTGEN_CLIENT_CACHE_PATH"`
}

// ClientConfig is the top-level CLI configuration, loaded from the
// environment only. The CLI has no JSON file or flag merging; it reads the
// few variables it needs and falls back to defaults.
type ClientConfig struct {
	// UI carries the login credentials presented to the API.
	UI UIConfig
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// DB holds the local cache settings.
	DB ClientDB
}

// GetClientConfig builds a CLI config view from the environment and applies
// defaults for the address, timeout, and cache path.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.Adapter.ServerAddress == "" {
		cfg.Adapter.ServerAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 30 * time.Second
	}
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = "testgen-cache.db"
	}

	return cfg, cfg.validate()
}

func (c *ClientConfig) validate() error {
	if c.UI.Username == "" || c.UI.Password == "" {
		return fmt.Errorf("%w: TESTGEN_USERNAME and TESTGEN_PASSWORD are required", ErrInvalidUIConfig)
	}
	return nil
}
