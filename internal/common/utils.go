package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically secure random bytes.
// The process cannot continue safely without randomness, so a failing
// generator panics instead of returning a weak value.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to remove passphrases and keys from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
