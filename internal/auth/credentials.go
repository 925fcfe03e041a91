package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CheckCredentials compares a login attempt against the configured admin
// identity. The password is checked with bcrypt against a pre-hashed
// credential; a plaintext password is never stored or compared directly.
// The result is a single boolean; callers must not distinguish an unknown
// username from a wrong password.
func CheckCredentials(adminUsername, passwordHash, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(adminUsername), []byte(username)) == 1

	// Run the bcrypt comparison regardless of the username result to keep
	// timing independent of which check failed.
	passErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	return userOK && passErr == nil
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
