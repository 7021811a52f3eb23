package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. OwnerID references accounts.id.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
