package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidDBConfig indicates incomplete metadata database settings
	// (for example, missing host or database name).
	ErrInvalidDBConfig = errors.New("invalid metadata database configuration")
	// ErrInvalidUIConfig indicates missing UI login credentials.
	ErrInvalidUIConfig = errors.New("invalid UI credentials configuration")
	// ErrInvalidCryptoConfig indicates a missing encryption passphrase.
	ErrInvalidCryptoConfig = errors.New("invalid encryption configuration")
	// ErrWeakDecryptSalt indicates the key-derivation salt is shorter than
	// MinDecryptSaltLength.
	ErrWeakDecryptSalt = errors.New("decrypt salt is too short")
	// ErrInvalidAuthConfig indicates a missing JWT hashing key.
	ErrInvalidAuthConfig = errors.New("invalid auth configuration")
)
