package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a reviewer password with bcrypt. Passwords get the slow,
// salted treatment; high-entropy machine secrets below do not need it.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashSecret returns the SHA-256 hex digest of a machine secret (API key,
// draft session token). These are random 256-bit values, so a fast
// deterministic hash is fine and keeps them queryable by hash.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// CompareSecretHash compares a raw secret with its stored SHA-256 digest.
func CompareSecretHash(secret, storedHash string) bool {
	return HashSecret(secret) == storedHash
}
