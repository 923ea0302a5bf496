package usecase

import (
	"context"

	"loomtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// AppendTrackingInput carries a free-form tracking step. It never changes
// the canonical order status.
type AppendTrackingInput struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// MarkPaidInput records the payment processor confirmation.
type MarkPaidInput struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

// ListOrdersInput pages the admin order listing.
type ListOrdersInput struct {
	Status string
	Limit  int
	Offset int
}

// OrderUsecase defines the interface for the order lifecycle.
//
// Lifecycle: pending -> {approved, rejected, cancelled}; approved -> paid.
// Rejected, cancelled and paid are terminal. Mark-paid requires a prior
// approval; paying a pending order is rejected.
type OrderUsecase interface {
	// PlaceOrder creates a pending order and atomically reserves stock.
	// The order insert and the conditional stock decrement run in one
	// transaction; losing the stock race rolls everything back.
	PlaceOrder(ctx context.Context, actor *entity.User, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder returns a single order with its tracking history. Visible
	// to the owning buyer, the manager owning the product, or an admin.
	GetOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// MyOrders returns the actor's own orders.
	MyOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error)

	// PendingForManager returns pending orders against the actor's products.
	PendingForManager(ctx context.Context, actor *entity.User) ([]*entity.Order, error)

	// ApprovedForManager returns approved orders against the actor's products.
	ApprovedForManager(ctx context.Context, actor *entity.User) ([]*entity.Order, error)

	// AllOrders returns every order. Admin only (guarded at the route).
	AllOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)

	// ApproveOrder transitions pending -> approved. Owning manager or admin.
	ApproveOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// RejectOrder transitions pending -> rejected and releases the
	// reserved stock. Owning manager or admin.
	RejectOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// CancelOrder transitions pending -> cancelled and releases the
	// reserved stock. Owning buyer only.
	CancelOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// AppendTracking records a granular progress step without touching
	// the canonical status. Owning manager or admin.
	AppendTracking(ctx context.Context, actor *entity.User, orderID uuid.UUID, input *AppendTrackingInput) (*entity.Order, error)

	// MarkPaid transitions approved -> paid and stores the transaction id.
	// Owning buyer or admin.
	MarkPaid(ctx context.Context, actor *entity.User, orderID uuid.UUID, input *MarkPaidInput) (*entity.Order, error)
}
