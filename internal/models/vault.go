package models

import "time"

// Vault holds the wrapped key protecting a user's credential secrets.
// The plaintext vault key never persists; it only lives in process memory
// inside a Session.
type Vault struct {
	ID     string
	UserID string

	// VaultKeyCipher is the authenticated ciphertext of the random vault
	// key: wrapSalt ∥ nonce ∥ ciphertext ∥ tag.
	VaultKeyCipher []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}
