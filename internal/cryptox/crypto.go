// Package cryptox derives and checks password verifiers. Only the verifier
// and its salt are stored; the password itself never is.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of salts made by NewVerifier.
const SaltSize = 16

// DeriveKey stretches password with argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so the key itself is not kept.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// NewVerifier salts password and returns what must be stored to check it
// later.
func NewVerifier(password string) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return salt, MakeVerifier(DeriveKey([]byte(password), salt))
}

// CheckPassword compares in constant time.
func CheckPassword(password string, salt, verifier []byte) bool {
	candidate := MakeVerifier(DeriveKey([]byte(password), salt))
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
