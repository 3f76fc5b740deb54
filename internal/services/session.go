// Package services contains the application services of the vault: the
// authentication flow producing sessions, and the credential operations that
// consume them.
package services

import "github.com/guilhermegsr/password-manager-LP/internal/common"

// Session is the ephemeral value produced by a successful login. It carries
// the unwrapped vault key and the identity needed to scope credential
// operations to the right vault.
//
// A Session is exclusively owned by the caller that received it, is not safe
// for concurrent use without external locking, and must be destroyed on
// logout or process exit. It is the sole authorization token for credential
// operations: possessing an active Session for a vault is the access check.
type Session struct {
	Username string
	VaultID  string

	vaultKey []byte
}

// NewSession wraps an unwrapped vault key. The session takes ownership of
// the slice.
func NewSession(username, vaultID string, vaultKey []byte) *Session {
	return &Session{Username: username, VaultID: vaultID, vaultKey: vaultKey}
}

// VaultKey exposes the key for field encryption. Callers must not retain the
// returned slice past the lifetime of the session.
func (s *Session) VaultKey() []byte {
	return s.vaultKey
}

// Active reports whether the session still holds a usable key.
func (s *Session) Active() bool {
	return s != nil && s.vaultKey != nil
}

// Destroy zeroizes the vault key and renders the session unusable.
// Safe to call more than once.
func (s *Session) Destroy() {
	if s == nil {
		return
	}
	common.WipeByteArray(s.vaultKey)
	s.vaultKey = nil
}
