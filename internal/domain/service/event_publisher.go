package service

import (
	"context"

	"accounts/internal/domain/entity"
)

// EventPublisher defines the interface for publishing account events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes a committed account lifecycle change
	PublishAccountEvent(ctx context.Context, event *entity.AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
