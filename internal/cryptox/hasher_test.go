package cryptox

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

// deriveForTest computes the digest for a hand-built PHC string with
// m=8, t=1, p=1 and a 32-byte output.
func deriveForTest(t *testing.T, passphrase, salt []byte) string {
	t.Helper()
	sum := argon2.IDKey(passphrase, salt, 1, 8, 1, 32)
	return base64.RawStdEncoding.EncodeToString(sum)
}

func TestHashPassphrase_RoundTrip(t *testing.T) {
	encoded := HashPassphrase([]byte("Secret123!"))

	require.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"),
		"hash must be a self-describing PHC string: %s", encoded)

	assert.True(t, VerifyPassphrase([]byte("Secret123!"), encoded))
	assert.False(t, VerifyPassphrase([]byte("secret123!"), encoded))
	assert.False(t, VerifyPassphrase([]byte(""), encoded))
}

func TestHashPassphrase_SaltedPerHash(t *testing.T) {
	h1 := HashPassphrase([]byte("same"))
	h2 := HashPassphrase([]byte("same"))
	assert.NotEqual(t, h1, h2, "fresh salt must make hashes differ")
}

func TestVerifyPassphrase_MalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$AAAA$BBBB"},
		{"wrong version", "$argon2id$v=18$m=65536,t=3,p=2$AAAA$BBBB"},
		{"bad base64", "$argon2id$v=19$m=65536,t=3,p=2$!!$??"},
		{"missing digest", "$argon2id$v=19$m=65536,t=3,p=2$AAAA"},
		{"zero cost", "$argon2id$v=19$m=0,t=0,p=0$AAAA$BBBB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, VerifyPassphrase([]byte("whatever"), tc.encoded))
		})
	}
}

func TestVerifyPassphrase_UsesEmbeddedParams(t *testing.T) {
	// A hash produced under different cost parameters must still verify,
	// because verification reads the parameters from the string itself.
	encoded := "$argon2id$v=19$m=8,t=1,p=1$MTIzNDU2Nzg5MGFiY2RlZg$"
	sum := deriveForTest(t, []byte("pw"), []byte("1234567890abcdef"))
	encoded += sum

	assert.True(t, VerifyPassphrase([]byte("pw"), encoded))
	assert.False(t, VerifyPassphrase([]byte("pw2"), encoded))
}
