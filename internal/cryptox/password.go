// Package cryptox wraps the password hashing primitives used by the auth
// service.
package cryptox

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is the bcrypt work factor used for new password hashes.
const PasswordHashCost = 10

// HashPassword produces a salted one-way hash of the given password.
// The salt is generated per call and embedded in the output, so hashing the
// same password twice yields different hashes.
func HashPassword(password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
// A mismatch is a normal outcome, not an error.
func VerifyPassword(password []byte, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}
