package impl

import (
	"context"
	"log/slog"

	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/repository"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// CreateProduct creates a listing owned by the actor. Role and suspension
// are enforced at the route; validation happens at binding time plus the
// invariants re-checked here.
func (srv *productService) CreateProduct(ctx context.Context, actor *entity.User, input *usecase.CreateProductInput) (*entity.Product, error) {
	if actor.IsSuspended() {
		return nil, domainerrors.ErrAccountSuspended
	}
	if input.Name == "" || input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and positive price are required")
	}

	minOrderQty := input.MinOrderQty
	if minOrderQty < 1 {
		minOrderQty = 1
	}

	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Quantity:    input.Quantity,
		MinOrderQty: minOrderQty,
		Category:    input.Category,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		AddedBy:     actor.Email,
		Status:      entity.ProductActive,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created",
		slog.String("name", product.Name),
		slog.String("addedBy", product.AddedBy),
	)

	return product, nil
}

// GetProduct returns a single listing.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListProducts returns listings matching the filter.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductListFilter{
		Status:  entity.ProductStatus(input.Status),
		AddedBy: input.AddedBy,
		Search:  input.Search,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies a partial update under the ownership rule.
func (srv *productService) UpdateProduct(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if actor.IsSuspended() {
		return nil, domainerrors.ErrAccountSuspended
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for update")
	}

	if !actor.CanManageProduct(product) {
		return nil, domainerrors.ErrNotProductOwner
	}

	if input.Status != nil && !entity.ProductStatus(*input.Status).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product status")
	}

	// Only the columns the input actually set are written, so a racing
	// stock decrement is never clobbered by this read-modify-write.
	if err := srv.productRepo.Update(ctx, id, productChanges(input)); err != nil {
		return nil, errors.Wrap(err, "failed to persist product update")
	}

	applyProductUpdate(product, input)

	return product, nil
}

// DeleteProduct removes a listing under the same ownership rule.
func (srv *productService) DeleteProduct(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if actor.IsSuspended() {
		return domainerrors.ErrAccountSuspended
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product for deletion")
	}

	if !actor.CanManageProduct(product) {
		return domainerrors.ErrNotProductOwner
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted",
		slog.String("id", id.String()),
		slog.String("deletedBy", actor.Email),
	)

	return nil
}

// productChanges maps the set input fields to their table columns.
func productChanges(input *usecase.UpdateProductInput) map[string]any {
	changes := map[string]any{}
	if input.Name != nil {
		changes["name"] = *input.Name
	}
	if input.Price != nil {
		changes["price"] = *input.Price
	}
	if input.Quantity != nil {
		changes["quantity"] = *input.Quantity
	}
	if input.MinOrderQty != nil {
		changes["min_order_qty"] = *input.MinOrderQty
	}
	if input.Category != nil {
		changes["category"] = *input.Category
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.ImageURL != nil {
		changes["image_url"] = *input.ImageURL
	}
	if input.Status != nil {
		changes["status"] = *input.Status
	}

	return changes
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.MinOrderQty != nil {
		product.MinOrderQty = *input.MinOrderQty
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Status != nil {
		product.Status = entity.ProductStatus(*input.Status)
	}
}
