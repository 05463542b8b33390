package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of the given plain-text
// password using bcrypt.DefaultCost.
//
// bcrypt generates a fresh salt on every call, so hashing the same password
// twice yields two different hashes. The only way to confirm a match is
// CheckPassword.
//
// Returns a non-nil error if the password exceeds bcrypt's length limit or
// hashing fails.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plain-text password matches the given
// bcrypt hash.
//
// The comparison is performed by bcrypt in constant time and the result is a
// bare boolean: no partial-match information is exposed to callers.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
