package repository

import (
	"context"
	"errors"

	"loomtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order lookup misses.
var ErrOrderNotFound = errors.New("order not found")

// OrderListFilter narrows the order listings. Zero values are ignored.
type OrderListFilter struct {
	BuyerEmail   string             // Orders placed by this buyer.
	ProductOwner string             // Orders against products added by this manager.
	Status       entity.OrderStatus // Canonical lifecycle state.
	Limit        int
	Offset       int
}

// OrderRepository defines the standard operations for order persistence.
// Tracking history rows load and store together with their order.
type OrderRepository interface {
	// FindByID retrieves a single order with its tracking history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves orders matching the filter, newest first,
	// tracking history included.
	List(ctx context.Context, filter OrderListFilter) ([]*entity.Order, error)

	// Create persists a new order together with its initial tracking entry.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists status, timestamps, transaction id and any tracking
	// entries appended since the order was loaded. Existing tracking rows
	// are never rewritten.
	Update(ctx context.Context, order *entity.Order) error
}
