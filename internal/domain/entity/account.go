// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user's identity and credential record.
// Email is unique and compared exactly as stored.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Never serialized.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AccountDraft buffers proposed changes to an Account. Nothing is applied to the
// stored record until every check on the draft has passed.
type AccountDraft struct {
	Name         string
	Email        string
	Phone        string
	PasswordHash string // Empty keeps the current hash.
}

// Apply returns a copy of a with the draft's values written over it.
func (d AccountDraft) Apply(a Account) Account {
	a.Name = d.Name
	a.Email = d.Email
	a.Phone = d.Phone
	if d.PasswordHash != "" {
		a.PasswordHash = d.PasswordHash
	}

	return a
}
