// Package utils provides utility functions for the application.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

func ToPtr[T any](v T) *T {
	return &v
}

func IsTrue(b *bool) bool {
	return b != nil && *b
}

// HashPassword returns the lowercase hex SHA-256 digest of the given
// password. Stored password hashes use this exact encoding.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
