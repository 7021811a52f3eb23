// Package model holds the GORM persistence models. They mirror the tables created
// by the goose migrations and never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 generated by the repository.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:accounts_email_key;not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	PasswordHash string    `gorm:"type:varchar(72);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Posts []PostModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
