package cryptox

import "golang.org/x/crypto/argon2"

const (
	// WrapKeyLen is the wrapping key size, matching the AES-256 key size
	// used by the vault key envelope.
	WrapKeyLen = 32

	// WrapSaltLen is the per-vault wrapping salt size in bytes.
	WrapSaltLen = 16
)

// DeriveWrappingKey derives the vault key wrapping key from the passphrase
// and the per-vault wrap salt. Deterministic for a given (passphrase, salt)
// pair. The salt must never be the one used by the password hasher, so a
// compromise of one path does not correlate with the other.
func DeriveWrappingKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, WrapKeyLen)
}
