package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is content owned by exactly one Account. The account service only
// touches posts when cascading an account deletion.
type Post struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
