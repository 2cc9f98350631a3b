package auth

import (
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// BcryptChecker returns a CheckFunc for stores that keep bcrypt hashes.
func BcryptChecker() CheckFunc {
	return func(ctx context.Context, storedHash, provided string) error {
		if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(provided)); err != nil {
			return WrapError(KindCredentialMismatch, err)
		}
		return nil
	}
}

// PlainChecker returns a CheckFunc comparing plaintext credentials in
// constant time. Test and demo use only.
func PlainChecker() CheckFunc {
	return func(ctx context.Context, stored, provided string) error {
		if subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) != 1 {
			return NewError(KindCredentialMismatch, "password mismatch")
		}
		return nil
	}
}
