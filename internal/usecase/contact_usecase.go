package usecase

import (
	"context"

	"loomtrack/internal/domain/entity"
)

// SubmitMessageInput defines a contact form submission.
type SubmitMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"message" validate:"required"`
}

// ContactUsecase stores contact form submissions.
type ContactUsecase interface {
	// SubmitMessage validates and persists a message.
	SubmitMessage(ctx context.Context, input *SubmitMessageInput) (*entity.ContactMessage, error)
}
