package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const resetSecretSize = 32

// MakeResetToken generates the one-time password reset pair: the raw
// secret that goes into the mailed link and the digest that gets stored.
// The digest is an unsalted sha256 on purpose, lookup happens by exact
// match so a salt would break it.
func MakeResetToken() (secret, digest string, err error) {
	b := make([]byte, resetSecretSize)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}

	secret = hex.EncodeToString(b)
	return secret, HashResetToken(secret), nil
}

// HashResetToken recomputes the stored digest for a presented secret
func HashResetToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// ResetTokenMatches compares two digests in constant time
func ResetTokenMatches(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
