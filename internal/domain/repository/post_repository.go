package repository

import (
	"context"

	"github.com/google/uuid"
)

// PostRepository covers the post operations the account lifecycle needs.
type PostRepository interface {
	// DeleteByOwnerID removes every post owned by the account and reports how many were removed.
	DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
