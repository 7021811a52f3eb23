// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its exact email address.
	// Implementations must read from the primary so uniqueness checks are not stale.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account and fills in its ID and timestamps.
	// A unique-email violation is reported as domainerrors.ErrEmailAlreadyUsed.
	Create(ctx context.Context, account *entity.Account) error

	// Update writes name, email, phone and password hash of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account. ErrAccountNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
