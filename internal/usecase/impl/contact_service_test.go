package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"loomtrack/internal/domain/entity"
	mockRepo "loomtrack/internal/mocks/repository"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContactService(t *testing.T) (usecase.ContactUsecase, *mockRepo.MockMessageRepository) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewContactService(ContactServiceParams{
		MessageRepo: messageRepo,
		Logger:      logger,
	})

	return service, messageRepo
}

func TestContactService_SubmitMessage_Success(t *testing.T) {
	service, messageRepo := createTestContactService(t)

	ctx := context.Background()

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Run(func(ctx context.Context, message *entity.ContactMessage) {
			message.ID = uuid.New()
		}).
		Return(nil)

	message, err := service.SubmitMessage(ctx, &usecase.SubmitMessageInput{
		Name:    "A Buyer",
		Email:   "buyer@example.com",
		Subject: "Bulk pricing",
		Body:    "Do you offer discounts above 1000 units?",
	})

	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", message.Email)
	assert.NotEqual(t, uuid.Nil, message.ID)
}

func TestContactService_SubmitMessage_StoreFailure(t *testing.T) {
	service, messageRepo := createTestContactService(t)

	ctx := context.Background()

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Return(errors.New("connection reset"))

	message, err := service.SubmitMessage(ctx, &usecase.SubmitMessageInput{
		Name:  "A Buyer",
		Email: "buyer@example.com",
		Body:  "Hello",
	})

	assert.Nil(t, message)
	assert.Error(t, err)
}
