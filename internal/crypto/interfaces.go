// Package crypto implements the secret cipher that protects stored
// source-database credentials. The cipher key is derived once, at startup,
// from the configured encryption passphrase and salt.
package crypto

// SecretCipher encrypts and decrypts short secrets (connection passwords)
// for storage in the metadata database.
type SecretCipher interface {
	// EncryptText encrypts plaintext and returns a base64 blob safe to
	// persist in a text column.
	EncryptText(plaintext string) (string, error)

	// DecryptText reverses EncryptText. Fails if the blob is malformed,
	// was produced under a different passphrase/salt pair, or has been
	// tampered with.
	DecryptText(blob string) (string, error)
}
