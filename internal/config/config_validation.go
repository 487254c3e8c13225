// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// MinDecryptSaltLength is the minimum accepted length of TG_DECRYPT_SALT.
// A shorter salt weakens the derived encryption key, so startup is refused
// rather than silently proceeding.
const MinDecryptSaltLength = 16

// validate checks that the final merged [Config] satisfies all invariants
// before it is used at startup.
//
// Secret-bearing values must be non-empty and the decrypt salt must meet its
// minimum length. Validation never mutates the configuration or the process
// environment.
func (cfg *Config) validate() error {
	if cfg.DB.Host == "" || cfg.DB.Name == "" {
		return ErrInvalidDBConfig
	}

	if cfg.UI.Username == "" || cfg.UI.Password == "" {
		return ErrInvalidUIConfig
	}

	if cfg.Crypto.DecryptPassword == "" {
		return ErrInvalidCryptoConfig
	}

	if len(cfg.Crypto.DecryptSalt) < MinDecryptSaltLength {
		return fmt.Errorf("%w: got %d chars, need at least %d",
			ErrWeakDecryptSalt, len(cfg.Crypto.DecryptSalt), MinDecryptSaltLength)
	}

	if cfg.Auth.HashingKey == "" {
		return ErrInvalidAuthConfig
	}

	return nil
}
