// Package payment implements the PaymentGateway domain service against Stripe.
package payment

import (
	"context"
	"log/slog"

	"loomtrack/config"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/service"
	"loomtrack/internal/errors"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// stripeGateway implements service.PaymentGateway using the Stripe SDK.
type stripeGateway struct {
	api    *client.API
	logger *slog.Logger
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripeGateway{
		api:    api,
		logger: logger,
	}, nil
}

// CreatePaymentIntent mints a Stripe PaymentIntent for a client-side charge.
func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Error("Stripe payment intent creation failed",
			slog.Int64("amount", amountMinorUnits),
			slog.String("currency", currency),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentFailed.WrapMessage("create payment intent")
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
