package usecase

import (
	"context"

	"loomtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a listing.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	MinOrderQty int     `json:"minOrderQty" validate:"gte=1"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image"`
}

// UpdateProductInput carries a partial listing update. Nil fields are
// left untouched.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	MinOrderQty *int     `json:"minOrderQty" validate:"omitempty,gte=1"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image"`
	Status      *string  `json:"status"`
}

// ListProductsInput narrows and pages the public catalog listing.
type ListProductsInput struct {
	Status  string
	AddedBy string
	Search  string
	Limit   int
	Offset  int
}

// ProductUsecase defines the interface for catalog operations. Write
// operations receive the acting user for ownership checks.
type ProductUsecase interface {
	// CreateProduct creates a listing owned by the actor.
	CreateProduct(ctx context.Context, actor *entity.User, input *CreateProductInput) (*entity.Product, error)

	// GetProduct returns a single listing.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns listings matching the filter.
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)

	// UpdateProduct applies a partial update. Only the owning manager or
	// an admin may update.
	UpdateProduct(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a listing under the same ownership rule.
	DeleteProduct(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
