package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	// mergo fills only zero-valued fields, so earlier sources take priority.
	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the lowest-priority source: built-in defaults for the
// non-secret settings that have sensible ones.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &Config{
		Auth: AuthConfig{
			TokenIssuer:   "testgen",
			TokenDuration: 24 * time.Hour,
		},
		Server: ServerConfig{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
	})

	return b
}
