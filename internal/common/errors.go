// Package common defines shared sentinel errors and small helpers used across
// the vault layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrValidation marks rejected input (empty name, username already
	// registered, ...). The wrapped message is safe to show to the user.
	ErrValidation = errors.New("validation error")

	// ErrAuthentication covers every login failure: unknown username, wrong
	// passphrase, failed vault key unwrap. Deliberately generic so callers
	// cannot tell which condition occurred.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when a record does not exist or is owned by a
	// different vault. The two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("not found")

	// ErrIntegrity signals an AEAD tag mismatch on stored ciphertext after a
	// successful login: corruption or tampering, never a wrong passphrase.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrStorage hides the underlying database failure. Details are logged
	// internally and never surfaced to the user.
	ErrStorage = errors.New("storage failure")
)
