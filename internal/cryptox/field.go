package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/guilhermegsr/password-manager-LP/internal/common"
)

const gcmNonceSize = 12

// EncryptField encrypts a single credential field with AES-256-GCM under the
// vault key. A fresh random nonce is generated for every call; nonces are
// never derived from counters or content. The returned blob layout is
//
//	nonce(12) ∥ ciphertext ∥ tag(16)
//
// An empty plaintext is a valid value and is encrypted like any other.
func EncryptField(key, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(gcmNonceSize)
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptField authenticates and decrypts a blob produced by EncryptField.
// Any truncation or tag mismatch yields common.ErrIntegrity: the stored
// ciphertext is corrupted, tampered with, or encrypted under a different key.
func DecryptField(key, blob []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(blob) < gcmNonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", common.ErrIntegrity)
	}

	nonce, ciphertext := blob[:gcmNonceSize], blob[gcmNonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrIntegrity, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return aead, nil
}
