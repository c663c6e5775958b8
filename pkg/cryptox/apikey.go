package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashAPIKey hashes a plaintext API key with bcrypt for at-rest storage.
// The returned string embeds the salt and cost and can be verified with
// VerifyAPIKey.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash api key: %w", err)
	}
	return string(hash), nil
}

// VerifyAPIKey reports whether the plaintext key matches the stored bcrypt hash.
// Malformed hashes verify as false rather than erroring; the caller only ever
// cares about the accept/reject outcome.
func VerifyAPIKey(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
