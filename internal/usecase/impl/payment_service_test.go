package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"loomtrack/config"
	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/service"
	mockRepo "loomtrack/internal/mocks/repository"
	mockSvc "loomtrack/internal/mocks/service"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Stripe.Currency = "usd"

	service := NewPaymentService(PaymentServiceParams{
		Config:    cfg,
		OrderRepo: orderRepo,
		Gateway:   gateway,
		Logger:    logger,
	})

	return paymentServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		gateway:   gateway,
	}
}

func TestPaymentService_CreatePaymentIntent_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerEmail:    buyer.Email,
		OrderQuantity: 20,
		UnitPrice:     19.99,
		Status:        entity.OrderApproved,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	// 20 * 19.99 = 399.80 major units, 39980 cents.
	fx.gateway.EXPECT().
		CreatePaymentIntent(ctx, int64(39980), "usd").
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

	output, err := fx.service.CreatePaymentIntent(ctx, buyer, &usecase.CreatePaymentIntentInput{
		OrderID: order.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", output.ClientSecret)
}

func TestPaymentService_CreatePaymentIntent_PendingOrderRefused(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:         uuid.New(),
		BuyerEmail: buyer.Email,
		Status:     entity.OrderPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output, err := fx.service.CreatePaymentIntent(ctx, buyer, &usecase.CreatePaymentIntentInput{
		OrderID: order.ID,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotApproved)
}

func TestPaymentService_CreatePaymentIntent_NotBuyer(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:         uuid.New(),
		BuyerEmail: "someone-else@example.com",
		Status:     entity.OrderApproved,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output, err := fx.service.CreatePaymentIntent(ctx, buyer, &usecase.CreatePaymentIntentInput{
		OrderID: order.ID,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_CreatePaymentIntent_GatewayFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerEmail:    buyer.Email,
		OrderQuantity: 10,
		UnitPrice:     5,
		Status:        entity.OrderApproved,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().
		CreatePaymentIntent(ctx, int64(5000), "usd").
		Return(nil, domainerrors.ErrPaymentFailed)

	output, err := fx.service.CreatePaymentIntent(ctx, buyer, &usecase.CreatePaymentIntentInput{
		OrderID: order.ID,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
}
