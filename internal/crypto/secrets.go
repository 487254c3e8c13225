// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/testgen/internal/config"
	"golang.org/x/crypto/argon2"
)

// secretCipher is the private implementation of [SecretCipher].
type secretCipher struct {
	// key is the 256-bit AES key derived from the configured passphrase
	// and salt. Derived once; the passphrase itself is not retained.
	key []byte
}

// NewSecretCipher derives the cipher key from cfg with Argon2id using the
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// The same passphrase and salt always derive the same key, so blobs written
// by one process remain readable by the next.
func NewSecretCipher(cfg config.CryptoConfig) SecretCipher {
	key := argon2.IDKey(
		[]byte(cfg.DecryptPassword),
		[]byte(cfg.DecryptSalt),
		1,
		64*1024, // 64 MiB
		4,
		32, // 256 bits
	)

	return &secretCipher{key: key}
}

// EncryptText implements [SecretCipher]. It seals plaintext with AES-256-GCM.
// A random 12-byte nonce is prepended to the ciphertext so that the
// decryption side can locate it: blob = base64(nonce ‖ ciphertext).
func (s *secretCipher) EncryptText(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

// DecryptText implements [SecretCipher]. It unseals a blob produced by
// [secretCipher.EncryptText]. The decoded blob must be at least as long as
// the GCM nonce (12 bytes). Returns an error if the blob is too short, the
// key is wrong, or the ciphertext is corrupted (authentication-tag mismatch).
func (s *secretCipher) DecryptText(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("error decoding secret blob: %w", err)
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", errors.New("secret blob is too short")
	}

	plaintext, err := gcm.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("error decrypting secret blob: %w", err)
	}

	return string(plaintext), nil
}
