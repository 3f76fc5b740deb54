// Package models defines the persisted entities of the vault and the
// read-side views handed to the UI layer.
package models

import "time"

// User is an account that owns exactly one vault.
type User struct {
	// ID is a globally unique identifier (UUID).
	ID string

	// Username is unique and case-sensitive.
	Username string

	// PasswordHash is a self-describing Argon2id hash in PHC format. It is
	// only ever verified, never decrypted, and is independent of the vault
	// key wrapping material.
	PasswordHash []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}
