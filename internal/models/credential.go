package models

import "time"

// Credential is a named record in a vault. Name, username and url stay in
// plaintext so they can be listed and searched without decryption; notes and
// password are stored as independent AEAD blobs under the vault key.
//
// Optional fields use pointers (or nil blobs): absent and set-to-empty are
// distinct states.
type Credential struct {
	ID      string
	VaultID string

	// Name is required, plaintext, searchable.
	Name string

	// Username and URL are optional plaintext fields.
	Username *string
	URL      *string

	// Notes and PasswordCipher are optional AEAD blobs
	// (nonce ∥ ciphertext ∥ tag), each with its own nonce. nil means absent.
	Notes          []byte
	PasswordCipher []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CredentialSummary is the non-secret listing view. It never carries
// ciphertext or decrypted values.
type CredentialSummary struct {
	ID        string
	Name      string
	Username  *string
	URL       *string
	UpdatedAt time.Time
}

// CredentialDetails is the unlocked view returned by GetFull: the summary
// fields plus the decrypted secrets of the fields that are present. Callers
// must not retain the plaintext longer than needed.
type CredentialDetails struct {
	CredentialSummary

	Password *string
	Notes    *string
}
