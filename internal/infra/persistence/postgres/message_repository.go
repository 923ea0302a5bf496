package postgres

import (
	"context"

	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/repository"
	"loomtrack/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new contact message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	messageM := &model.ContactMessageModel{
		Name:        message.Name,
		Email:       message.Email,
		Subject:     message.Subject,
		Body:        message.Body,
		SubmittedAt: message.SubmittedAt,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	message.ID = messageM.ID

	return nil
}
