package repository

import (
	"context"

	"loomtrack/internal/domain/entity"
)

// MessageRepository persists contact form submissions. Write-once.
type MessageRepository interface {
	// Create persists a new contact message.
	Create(ctx context.Context, message *entity.ContactMessage) error
}
