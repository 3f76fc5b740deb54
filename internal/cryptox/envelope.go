package cryptox

import (
	"fmt"

	"github.com/guilhermegsr/password-manager-LP/internal/common"
)

// VaultKeyLen is the size of the random symmetric vault key.
const VaultKeyLen = 32

// CreateVaultKey generates a fresh random vault key and wraps it under a key
// derived from the passphrase with a fresh random salt. The returned blob is
//
//	wrapSalt(16) ∥ nonce(12) ∥ ciphertext ∥ tag(16)
//
// so everything needed to unwrap later travels in a single column. The
// plaintext vault key is also returned so registration can hand the caller an
// unlocked session without a second derivation.
func CreateVaultKey(passphrase []byte) (vaultKey, blob []byte, err error) {
	vaultKey = common.GenerateRandByteArray(VaultKeyLen)
	salt := common.GenerateRandByteArray(WrapSaltLen)

	wrapKey := DeriveWrappingKey(passphrase, salt)
	defer common.WipeByteArray(wrapKey)

	sealed, err := EncryptField(wrapKey, vaultKey)
	if err != nil {
		common.WipeByteArray(vaultKey)
		return nil, nil, fmt.Errorf("wrap vault key: %w", err)
	}

	blob = make([]byte, 0, len(salt)+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, sealed...)
	return vaultKey, blob, nil
}

// UnwrapVaultKey re-derives the wrapping key from the passphrase and the salt
// embedded in blob and attempts authenticated decryption of the vault key.
//
// A wrong passphrase and a tampered blob are indistinguishable by design:
// both return common.ErrAuthentication and never a partial or garbage key.
func UnwrapVaultKey(passphrase, blob []byte) ([]byte, error) {
	if len(blob) < WrapSaltLen+gcmNonceSize {
		return nil, common.ErrAuthentication
	}

	salt, sealed := blob[:WrapSaltLen], blob[WrapSaltLen:]

	wrapKey := DeriveWrappingKey(passphrase, salt)
	defer common.WipeByteArray(wrapKey)

	vaultKey, err := DecryptField(wrapKey, sealed)
	if err != nil {
		return nil, common.ErrAuthentication
	}
	if len(vaultKey) != VaultKeyLen {
		common.WipeByteArray(vaultKey)
		return nil, common.ErrAuthentication
	}
	return vaultKey, nil
}
