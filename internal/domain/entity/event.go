package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountEvent describes a committed change to an account's lifecycle.
type AccountEvent struct {
	Type         string    `json:"type"`
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	AccountID    uuid.UUID `json:"account_id"`
	Email        string    `json:"email,omitempty"`
	DeletedPosts int64     `json:"deleted_posts,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
