package impl

import (
	"context"
	"log/slog"
	"time"

	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/repository"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Tracking labels recorded for canonical lifecycle transitions.
const (
	trackingPlaced    = "Order Placed"
	trackingApproved  = "Order Approved"
	trackingRejected  = "Order Rejected"
	trackingCancelled = "Order Cancelled"
	trackingPaid      = "Payment Received"
)

// orderService implements the OrderUsecase interface. Every mutation that
// touches both an order and its product's stock counter runs through the
// transaction manager so the dual write stays atomic.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// PlaceOrder creates a pending order and atomically reserves stock.
func (srv *orderService) PlaceOrder(ctx context.Context, actor *entity.User, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if actor.IsSuspended() {
		return nil, domainerrors.ErrAccountSuspended
	}
	if !actor.Role.Matches(entity.RoleBuyer) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only buyers may place orders")
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		product, err := productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for order")
		}

		if input.Quantity < product.MinOrderQty {
			return domainerrors.ErrBelowMinOrderQty
		}
		if input.Quantity > product.Quantity {
			return domainerrors.ErrInsufficientStock
		}

		// The guard re-checks inside the UPDATE: a concurrent order may
		// have shrunk the stock since the read above.
		if err := productRepo.DecrementStock(ctx, product.ID, input.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return domainerrors.ErrInsufficientStock
			}
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to reserve stock")
		}

		order := &entity.Order{
			BuyerEmail:    actor.Email,
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductOwner:  product.AddedBy,
			OrderQuantity: input.Quantity,
			UnitPrice:     product.Price,
			Status:        entity.OrderPending,
		}
		order.AppendTracking(trackingPlaced, "", actor.Email, srv.now())

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		placed = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order placed",
		slog.String("buyer", actor.Email),
		slog.String("product", placed.ProductName),
		slog.Int("quantity", placed.OrderQuantity),
	)

	return placed, nil
}

// GetOrder returns a single order with its tracking history. Visible to
// the owning buyer, the manager owning the product, or an admin.
func (srv *orderService) GetOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	switch {
	case order.BuyerEmail == actor.Email:
	case actor.Role.Matches(entity.RoleAdmin):
	case actor.Role.Matches(entity.RoleManager) && order.ProductOwner == actor.Email:
	default:
		return nil, domainerrors.ErrForbidden.WrapMessage("not a party to this order")
	}

	return order, nil
}

// MyOrders returns the actor's own orders.
func (srv *orderService) MyOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.OrderListFilter{BuyerEmail: actor.Email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	return orders, nil
}

// PendingForManager returns pending orders against the actor's products.
func (srv *orderService) PendingForManager(ctx context.Context, actor *entity.User) ([]*entity.Order, error) {
	return srv.listForManager(ctx, actor, entity.OrderPending)
}

// ApprovedForManager returns approved orders against the actor's products.
func (srv *orderService) ApprovedForManager(ctx context.Context, actor *entity.User) ([]*entity.Order, error) {
	return srv.listForManager(ctx, actor, entity.OrderApproved)
}

func (srv *orderService) listForManager(ctx context.Context, actor *entity.User, status entity.OrderStatus) ([]*entity.Order, error) {
	filter := repository.OrderListFilter{Status: status}
	// Admins see every order in the given state; managers only orders
	// against their own products.
	if !actor.Role.Matches(entity.RoleAdmin) {
		filter.ProductOwner = actor.Email
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list manager orders")
	}

	return orders, nil
}

// AllOrders returns every order.
func (srv *orderService) AllOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.OrderListFilter{
		Status: entity.OrderStatus(input.Status),
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// ApproveOrder transitions pending -> approved.
func (srv *orderService) ApproveOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	var approved *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := srv.loadOrderForReview(ctx, orderRepo, actor, orderID)
		if err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(entity.OrderApproved) {
			return domainerrors.ErrOrderNotPending
		}

		now := srv.now()
		order.Status = entity.OrderApproved
		order.ApprovedAt = &now
		order.AppendTracking(trackingApproved, "", actor.Email, now)

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist approval")
		}

		approved = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order approved",
		slog.String("order", approved.ID.String()),
		slog.String("actor", actor.Email),
	)

	return approved, nil
}

// RejectOrder transitions pending -> rejected and releases the reserved stock.
func (srv *orderService) RejectOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	var rejected *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()

		order, err := srv.loadOrderForReview(ctx, orderRepo, actor, orderID)
		if err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(entity.OrderRejected) {
			return domainerrors.ErrOrderNotPending
		}

		order.Status = entity.OrderRejected
		order.AppendTracking(trackingRejected, "", actor.Email, srv.now())

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist rejection")
		}

		// Give the reserved units back to the listing.
		if err := productRepo.RestoreStock(ctx, order.ProductID, order.OrderQuantity); err != nil {
			return errors.Wrap(err, "failed to restore stock after rejection")
		}

		rejected = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order rejected",
		slog.String("order", rejected.ID.String()),
		slog.String("actor", actor.Email),
	)

	return rejected, nil
}

// CancelOrder transitions pending -> cancelled and releases the reserved
// stock. Only the owning buyer may cancel, and only while pending.
func (srv *orderService) CancelOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	var cancelled *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order for cancellation")
		}

		if order.BuyerEmail != actor.Email {
			return domainerrors.ErrForbidden.WrapMessage("only the buyer who placed the order may cancel it")
		}
		if !order.Status.CanTransitionTo(entity.OrderCancelled) {
			return domainerrors.ErrOrderNotPending
		}

		order.Status = entity.OrderCancelled
		order.AppendTracking(trackingCancelled, "", actor.Email, srv.now())

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist cancellation")
		}

		if err := productRepo.RestoreStock(ctx, order.ProductID, order.OrderQuantity); err != nil {
			return errors.Wrap(err, "failed to restore stock after cancellation")
		}

		cancelled = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order cancelled",
		slog.String("order", cancelled.ID.String()),
		slog.String("buyer", actor.Email),
	)

	return cancelled, nil
}

// AppendTracking records a granular progress step without touching the
// canonical status.
func (srv *orderService) AppendTracking(ctx context.Context, actor *entity.User, orderID uuid.UUID, input *usecase.AppendTrackingInput) (*entity.Order, error) {
	order, err := srv.loadOrderForReview(ctx, srv.orderRepo, actor, orderID)
	if err != nil {
		return nil, err
	}

	order.AppendTracking(input.Status, input.Note, actor.Email, srv.now())

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to append tracking step")
	}

	return order, nil
}

// MarkPaid transitions approved -> paid and stores the transaction id.
// Paying straight from pending is refused: approval is the manager's
// commitment to fulfil, so money may only follow it.
func (srv *orderService) MarkPaid(ctx context.Context, actor *entity.User, orderID uuid.UUID, input *usecase.MarkPaidInput) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order for payment")
	}

	if order.BuyerEmail != actor.Email && !actor.Role.Matches(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the buyer who placed the order may pay for it")
	}
	if !order.Status.CanTransitionTo(entity.OrderPaid) {
		return nil, domainerrors.ErrOrderNotApproved
	}

	now := srv.now()
	order.Status = entity.OrderPaid
	order.PaidAt = &now
	order.TransactionID = input.TransactionID
	order.AppendTracking(trackingPaid, "", actor.Email, now)

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to persist payment")
	}

	srv.logger.Info("Order paid",
		slog.String("order", order.ID.String()),
		slog.String("transaction", input.TransactionID),
	)

	return order, nil
}

// loadOrderForReview loads an order and enforces the manager-side access
// rule: the manager owning the referenced product, or an admin.
func (srv *orderService) loadOrderForReview(ctx context.Context, orderRepo repository.OrderRepository, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if actor.Role.Matches(entity.RoleAdmin) {
		return order, nil
	}
	if actor.Role.Matches(entity.RoleManager) && order.ProductOwner == actor.Email {
		return order, nil
	}

	return nil, domainerrors.ErrForbidden.WrapMessage("only the product's manager or an admin may review this order")
}
