// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"runtime"

	"accounts/config"
	"accounts/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// Hashing is CPU-bound, so concurrent calls share a weighted semaphore.
type bcryptHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and auth.hashWorkers.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost, workers := config.DefaultBcryptCost, runtime.NumCPU()
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.HashWorkers > 0 {
			workers = cfg.Auth.HashWorkers
		}
	}

	return NewBcryptHasherWithCost(cost, workers)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost and worker bound.
// Costs outside bcrypt's range fall back to the default cost.
func NewBcryptHasherWithCost(cost, workers int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = config.DefaultBcryptCost
	}
	if workers <= 0 {
		workers = 1
	}

	return &bcryptHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(workers)),
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt draws a new salt for every call.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "waiting for hash worker")
	}
	defer h.sem.Release(1)

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errors.WithStack(service.ErrPasswordTooLong)
	}
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) bool {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	// err is nil only if the password and hash match; malformed hashes error out.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
