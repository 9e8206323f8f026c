package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when a submitted password does not match
// the stored credential.
var ErrPasswordMismatch = errors.New("password mismatch")

// bcrypt hashes start with a $2 version marker; anything else in the
// password column is a legacy plaintext row from the pre-hashing seed data.
func isHashedCredential(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// HashPassword hashes a plaintext password with the configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a submitted password against the stored credential.
//
// Hashed credentials use bcrypt's constant-time comparison. Rows that never
// went through hashing fall back to a constant-time byte comparison; this
// branch exists only until the legacy rows are migrated and is never taken
// for credentials written by Register.
func VerifyPassword(stored, submitted string) error {
	if isHashedCredential(stored) {
		if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)); err != nil {
			return ErrPasswordMismatch
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}
