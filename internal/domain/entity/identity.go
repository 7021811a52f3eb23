package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the account reference recovered from a verified auth token.
// It is not proof that the account still exists.
type Identity struct {
	AccountID uuid.UUID
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
