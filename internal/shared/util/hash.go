package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashUserKey derives the path-safe owner segment used in storage keys.
func HashUserKey(userID string) string {
	return SHA256Hex([]byte(strings.TrimSpace(userID)))
}

// SHA256Hex returns the lowercase hex sha256 of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
