package impl

import (
	"context"
	"log/slog"

	"loomtrack/internal/domain/entity"
	"loomtrack/internal/domain/repository"
	"loomtrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

// SubmitMessage persists a contact form submission.
func (srv *contactService) SubmitMessage(ctx context.Context, input *usecase.SubmitMessageInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Body,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to store contact message")
	}

	srv.logger.Info("Contact message received",
		slog.String("email", message.Email),
		slog.String("subject", message.Subject),
	)

	return message, nil
}
