package impl

import (
	"context"
	"log/slog"

	"loomtrack/config"
	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/repository"
	"loomtrack/internal/domain/service"
	"loomtrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	currency  string
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Config    *config.Config
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		currency:  params.Config.Stripe.Currency,
		logger:    params.Logger,
	}
}

// CreatePaymentIntent mints a processor intent for an approved order. The
// amount is the server-side order total in minor units; the client never
// supplies a price.
func (srv *paymentService) CreatePaymentIntent(ctx context.Context, actor *entity.User, input *usecase.CreatePaymentIntentInput) (*usecase.CreatePaymentIntentOutput, error) {
	if actor.IsSuspended() {
		return nil, domainerrors.ErrAccountSuspended
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order for payment intent")
	}

	if order.BuyerEmail != actor.Email {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the buyer who placed the order may pay for it")
	}
	if order.Status != entity.OrderApproved {
		return nil, domainerrors.ErrOrderNotApproved
	}

	amount := service.MinorUnits(order.Total())

	intent, err := srv.gateway.CreatePaymentIntent(ctx, amount, srv.currency)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Payment intent created",
		slog.String("order", order.ID.String()),
		slog.String("intent", intent.ID),
		slog.Int64("amount", amount),
	)

	return &usecase.CreatePaymentIntentOutput{ClientSecret: intent.ClientSecret}, nil
}
