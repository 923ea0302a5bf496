package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	mockRepo "loomtrack/internal/mocks/repository"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	manager := testManager()
	input := &usecase.CreateProductInput{
		Name:        "Cotton Twill Shirt",
		Price:       18.75,
		Quantity:    500,
		MinOrderQty: 50,
		Category:    "shirts",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, manager, input)

	require.NoError(t, err)
	assert.Equal(t, manager.Email, product.AddedBy)
	assert.Equal(t, entity.ProductActive, product.Status)
	assert.Equal(t, 50, product.MinOrderQty)
}

func TestProductService_CreateProduct_DefaultsMinOrderQty(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, testManager(), &usecase.CreateProductInput{
		Name:  "Linen Scarf",
		Price: 6.2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, product.MinOrderQty)
}

func TestProductService_CreateProduct_SuspendedManager(t *testing.T) {
	fx := createTestProductService(t)

	manager := testManager()
	manager.Status = entity.AccountSuspended

	product, err := fx.service.CreateProduct(context.Background(), manager, &usecase.CreateProductInput{
		Name:  "Wool Coat",
		Price: 120,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrAccountSuspended)
}

func TestProductService_UpdateProduct_PartialUpdate(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	manager := testManager()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product.ID, map[string]any{"price": 52.0}).Return(nil)

	newPrice := 52.0
	updated, err := fx.service.UpdateProduct(ctx, manager, product.ID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 52.0, updated.Price)
	assert.Equal(t, "Denim Jacket", updated.Name)
}

func TestProductService_UpdateProduct_LeavesStockUntouched(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	manager := testManager()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().
		Update(ctx, product.ID, mock.MatchedBy(func(changes map[string]any) bool {
			_, touchesQuantity := changes["quantity"]
			return !touchesQuantity
		})).
		Return(nil)

	newName := "Raw Denim Jacket"
	_, err := fx.service.UpdateProduct(ctx, manager, product.ID, &usecase.UpdateProductInput{
		Name: &newName,
	})

	require.NoError(t, err)
}

func TestProductService_UpdateProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	other := testManager()
	other.Email = "other-manager@example.com"
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	newPrice := 52.0
	updated, err := fx.service.UpdateProduct(ctx, other, product.ID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrNotProductOwner)
}

func TestProductService_UpdateProduct_AdminOverridesOwnership(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	admin := testAdmin()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product.ID, map[string]any{"status": "inactive"}).Return(nil)

	status := "inactive"
	updated, err := fx.service.UpdateProduct(ctx, admin, product.ID, &usecase.UpdateProductInput{
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProductInactive, updated.Status)
}

func TestProductService_UpdateProduct_UnknownStatus(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	manager := testManager()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	status := "archived"
	updated, err := fx.service.UpdateProduct(ctx, manager, product.ID, &usecase.UpdateProductInput{
		Status: &status,
	})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_DeleteProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	other := testManager()
	other.Email = "other-manager@example.com"
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	err := fx.service.DeleteProduct(ctx, other, product.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotProductOwner)
}

func TestProductService_DeleteProduct_Owner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	manager := testManager()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)

	err := fx.service.DeleteProduct(ctx, manager, product.ID)

	require.NoError(t, err)
}
