package cryptox

import (
	"testing"

	"github.com/guilhermegsr/password-manager-LP/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUnwrapVaultKey_RoundTrip(t *testing.T) {
	passphrase := []byte("Secret123!")

	vaultKey, blob, err := CreateVaultKey(passphrase)
	require.NoError(t, err)
	require.Len(t, vaultKey, VaultKeyLen)
	require.Greater(t, len(blob), WrapSaltLen+gcmNonceSize)

	recovered, err := UnwrapVaultKey(passphrase, blob)
	require.NoError(t, err)
	assert.Equal(t, vaultKey, recovered)
}

func TestCreateVaultKey_FreshMaterialPerVault(t *testing.T) {
	passphrase := []byte("Secret123!")

	key1, blob1, err := CreateVaultKey(passphrase)
	require.NoError(t, err)
	key2, blob2, err := CreateVaultKey(passphrase)
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2, "vault keys must be random")
	assert.NotEqual(t, blob1[:WrapSaltLen], blob2[:WrapSaltLen], "wrap salts must be random")
}

func TestUnwrapVaultKey_WrongPassphrase(t *testing.T) {
	_, blob, err := CreateVaultKey([]byte("Secret123!"))
	require.NoError(t, err)

	key, err := UnwrapVaultKey([]byte("wrongpass"), blob)
	require.ErrorIs(t, err, common.ErrAuthentication)
	assert.Nil(t, key, "must never return a partial or garbage key")
}

func TestUnwrapVaultKey_TamperedBlob(t *testing.T) {
	passphrase := []byte("Secret123!")
	_, blob, err := CreateVaultKey(passphrase)
	require.NoError(t, err)

	// Flip one byte in each region: salt, nonce, ciphertext/tag.
	for _, i := range []int{0, WrapSaltLen, len(blob) - 1} {
		mutated := append([]byte(nil), blob...)
		mutated[i] ^= 0x01
		_, err := UnwrapVaultKey(passphrase, mutated)
		require.ErrorIs(t, err, common.ErrAuthentication, "byte %d", i)
	}
}

func TestUnwrapVaultKey_TruncatedBlob(t *testing.T) {
	_, err := UnwrapVaultKey([]byte("x"), []byte{1, 2, 3})
	assert.ErrorIs(t, err, common.ErrAuthentication)
}

// A vault key wrapped at registration must decrypt fields encrypted during
// the same session after being unwrapped again at login.
func TestVaultContinuity(t *testing.T) {
	passphrase := []byte("Secret123!")

	vaultKey, blob, err := CreateVaultKey(passphrase)
	require.NoError(t, err)

	sealed, err := EncryptField(vaultKey, []byte("p@ss"))
	require.NoError(t, err)

	recovered, err := UnwrapVaultKey(passphrase, blob)
	require.NoError(t, err)

	plaintext, err := DecryptField(recovered, sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("p@ss"), plaintext)
}
