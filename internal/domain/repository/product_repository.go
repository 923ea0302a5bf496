package repository

import (
	"context"
	"errors"

	"loomtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product lookup misses.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a conditional stock decrement
// would drive the quantity negative. The caller treats it as losing the
// stock race and rolls back the surrounding transaction.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductListFilter narrows and pages the catalog listing.
type ProductListFilter struct {
	Status  entity.ProductStatus // Empty means any status.
	AddedBy string               // Owner email; empty means any owner.
	Search  string               // Free-text match against the product name.
	Limit   int
	Offset  int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter, newest first.
	List(ctx context.Context, filter ProductListFilter) ([]*entity.Product, error)

	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// Update persists only the given column changes. Writing whole rows
	// is deliberately not offered: a full-row write racing a concurrent
	// stock decrement would silently restore sold stock.
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) error

	// Delete removes a product listing.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts qty from the product's quantity,
	// guarded so the result never goes negative. Returns
	// ErrInsufficientStock when the guard fails.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error

	// RestoreStock adds qty back after a rejection or cancellation.
	RestoreStock(ctx context.Context, id uuid.UUID, qty int) error
}
