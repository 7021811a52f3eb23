// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"errors"
)

// ErrPasswordTooLong is returned by Hash when the plaintext exceeds the algorithm's input limit.
var ErrPasswordTooLong = errors.New("password exceeds maximum length")

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a freshly salted hash from a plaintext password.
	// Two calls with the same input never return the same string.
	Hash(ctx context.Context, password string) (string, error)

	// Check reports whether password matches hash. A malformed hash yields false.
	Check(ctx context.Context, password, hash string) bool
}
