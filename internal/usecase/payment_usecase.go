package usecase

import (
	"context"

	"loomtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePaymentIntentInput identifies the order being paid.
type CreatePaymentIntentInput struct {
	OrderID uuid.UUID `json:"orderId" validate:"required"`
}

// CreatePaymentIntentOutput carries the processor's client secret, which
// the browser uses to complete the charge.
type CreatePaymentIntentOutput struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentUsecase bridges orders to the external payment processor.
type PaymentUsecase interface {
	// CreatePaymentIntent converts the order total to minor units and
	// mints a payment intent. Only the owning buyer may pay, and only
	// for an approved order.
	CreatePaymentIntent(ctx context.Context, actor *entity.User, input *CreatePaymentIntentInput) (*CreatePaymentIntentOutput, error)
}
