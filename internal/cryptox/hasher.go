// Package cryptox implements the cryptographic core of the vault: the login
// passphrase hasher, the key derivation used for vault key wrapping, the vault
// key envelope, and the credential field cipher.
//
// Two independent salted Argon2id paths consume the passphrase: the
// authentication hash and the wrapping-key derivation. Keeping them separate
// lets the login hash be re-parameterized later without re-encrypting any
// stored ciphertext.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/guilhermegsr/password-manager-LP/internal/common"
	"golang.org/x/crypto/argon2"
)

// HashParams are the Argon2id cost parameters embedded in every produced hash.
type HashParams struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLen     uint32
	KeyLen      uint32
}

// DefaultHashParams returns the cost used for new password hashes, sized to
// take on the order of 100ms on commodity hardware.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      64 * 1024,
		Time:        3,
		Parallelism: 2,
		SaltLen:     16,
		KeyLen:      32,
	}
}

// HashPassphrase hashes a passphrase with Argon2id and a fresh random salt,
// returning a self-describing PHC string:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<b64 salt>$<b64 hash>
//
// All parameters needed for later verification are embedded in the string.
func HashPassphrase(passphrase []byte) string {
	p := DefaultHashParams()
	salt := common.GenerateRandByteArray(int(p.SaltLen))

	sum := argon2.IDKey(passphrase, salt, p.Time, p.Memory, p.Parallelism, p.KeyLen)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Parallelism,
		b64.EncodeToString(salt), b64.EncodeToString(sum))
}

// VerifyPassphrase recomputes the hash under the parameters embedded in
// encoded and compares in constant time. Malformed hashes verify as false;
// callers must not distinguish that case from a wrong passphrase.
func VerifyPassphrase(passphrase []byte, encoded string) bool {
	p, salt, sum, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey(passphrase, salt, p.Time, p.Memory, p.Parallelism, uint32(len(sum)))
	defer common.WipeByteArray(candidate)

	return subtle.ConstantTimeCompare(sum, candidate) == 1
}

func decodeHash(encoded string) (HashParams, []byte, []byte, error) {
	var p HashParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("unsupported hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, err
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Parallelism); err != nil {
		return p, nil, nil, err
	}
	if p.Memory == 0 || p.Time == 0 || p.Parallelism == 0 {
		return p, nil, nil, fmt.Errorf("invalid argon2 parameters")
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, err
	}
	sum, err := b64.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, err
	}
	if len(salt) == 0 || len(sum) == 0 {
		return p, nil, nil, fmt.Errorf("empty salt or digest")
	}

	return p, salt, sum, nil
}
