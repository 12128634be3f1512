package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken computes a SHA-256 hash of the token string. Used to key the
// auth cache so raw ID tokens are never stored in Redis.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
