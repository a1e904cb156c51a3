package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomHex returns a hex-encoded string of n cryptographically random
// bytes. The resulting string is 2*n characters long.
//
// Used for referral codes (8 bytes) and password-reset tokens (20 bytes,
// 160 bits of entropy).
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
