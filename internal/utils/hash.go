package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// bcrypt embeds a per-call random salt into the hash, so hashing the same
// password twice yields different values. The cost parameter tunes the work
// factor; values outside the bcrypt range fall back to
// [bcrypt.DefaultCost].
//
// The plaintext is never logged or stored by this function.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// The comparison is constant-time inside the bcrypt implementation.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
