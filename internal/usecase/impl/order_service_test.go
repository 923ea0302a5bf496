package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/repository"
	mockRepo "loomtrack/internal/mocks/repository"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return orderServiceFixtures{
		service:     service,
		txManager:   txManager,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func testBuyer() *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Email:  "buyer@example.com",
		Role:   entity.RoleBuyer,
		Status: entity.AccountVerified,
	}
}

func testManager() *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Email:  "manager@example.com",
		Role:   entity.RoleManager,
		Status: entity.AccountVerified,
	}
}

func testAdmin() *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin,
		Status: entity.AccountVerified,
	}
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:          uuid.New(),
		Name:        "Denim Jacket",
		Price:       49.5,
		Quantity:    100,
		MinOrderQty: 10,
		AddedBy:     "manager@example.com",
		Status:      entity.ProductActive,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	product := testProduct()
	input := &usecase.PlaceOrderInput{ProductID: product.ID, Quantity: 10}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			mockProductRepo.EXPECT().DecrementStock(ctx, product.ID, 10).Return(nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, buyer, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, buyer.Email, order.BuyerEmail)
	assert.Equal(t, product.Name, order.ProductName)
	assert.Equal(t, product.AddedBy, order.ProductOwner)
	assert.Equal(t, product.Price, order.UnitPrice)
	require.Len(t, order.TrackingHistory, 1)
	assert.Equal(t, "Order Placed", order.TrackingHistory[0].Status)
}

func TestOrderService_PlaceOrder_BelowMinimum(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	product := testProduct()
	input := &usecase.PlaceOrderInput{ProductID: product.ID, Quantity: 5}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, buyer, input)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrBelowMinOrderQty)
}

func TestOrderService_PlaceOrder_StockRaceLost(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	product := testProduct()
	input := &usecase.PlaceOrderInput{ProductID: product.ID, Quantity: 100}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			// A concurrent order drained the stock between read and decrement.
			mockProductRepo.EXPECT().
				DecrementStock(ctx, product.ID, 100).
				Return(repository.ErrInsufficientStock)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, buyer, input)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_PlaceOrder_SuspendedBuyer(t *testing.T) {
	fx := createTestOrderService(t)

	buyer := testBuyer()
	buyer.Status = entity.AccountSuspended

	order, err := fx.service.PlaceOrder(context.Background(), buyer, &usecase.PlaceOrderInput{
		ProductID: uuid.New(),
		Quantity:  10,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrAccountSuspended)
}

func TestOrderService_PlaceOrder_ManagerRefused(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), testManager(), &usecase.PlaceOrderInput{
		ProductID: uuid.New(),
		Quantity:  10,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_ApproveOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	manager := testManager()
	order := &entity.Order{
		ID:           uuid.New(),
		BuyerEmail:   "buyer@example.com",
		ProductID:    uuid.New(),
		ProductOwner: manager.Email,
		Status:       entity.OrderPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockOrderRepo.EXPECT().Update(ctx, order).Return(nil)

			return fn(mockFactory)
		})

	approved, err := fx.service.ApproveOrder(ctx, manager, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
	require.Len(t, approved.TrackingHistory, 1)
	assert.Equal(t, "Order Approved", approved.TrackingHistory[0].Status)
}

func TestOrderService_ApproveOrder_NotOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	manager := testManager()
	order := &entity.Order{
		ID:           uuid.New(),
		ProductOwner: "someone-else@example.com",
		Status:       entity.OrderPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			return fn(mockFactory)
		})

	approved, err := fx.service.ApproveOrder(ctx, manager, order.ID)

	assert.Nil(t, approved)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_ApproveOrder_AlreadyApproved(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	admin := testAdmin()
	order := &entity.Order{
		ID:           uuid.New(),
		ProductOwner: "manager@example.com",
		Status:       entity.OrderApproved,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			return fn(mockFactory)
		})

	approved, err := fx.service.ApproveOrder(ctx, admin, order.ID)

	assert.Nil(t, approved)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotPending)
}

func TestOrderService_RejectOrder_RestoresStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	manager := testManager()
	productID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		ProductID:     productID,
		ProductOwner:  manager.Email,
		OrderQuantity: 25,
		Status:        entity.OrderPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockOrderRepo.EXPECT().Update(ctx, order).Return(nil)
			mockProductRepo.EXPECT().RestoreStock(ctx, productID, 25).Return(nil)

			return fn(mockFactory)
		})

	rejected, err := fx.service.RejectOrder(ctx, manager, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderRejected, rejected.Status)
	require.Len(t, rejected.TrackingHistory, 1)
	assert.Equal(t, "Order Rejected", rejected.TrackingHistory[0].Status)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	productID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerEmail:    buyer.Email,
		ProductID:     productID,
		OrderQuantity: 10,
		Status:        entity.OrderPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockOrderRepo.EXPECT().Update(ctx, order).Return(nil)
			mockProductRepo.EXPECT().RestoreStock(ctx, productID, 10).Return(nil)

			return fn(mockFactory)
		})

	cancelled, err := fx.service.CancelOrder(ctx, buyer, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_NotBuyer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:         uuid.New(),
		BuyerEmail: "other-buyer@example.com",
		Status:     entity.OrderPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockRepo.NewMockProductRepository(t))
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			return fn(mockFactory)
		})

	cancelled, err := fx.service.CancelOrder(ctx, buyer, order.ID)

	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_CancelOrder_AfterApproval(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:         uuid.New(),
		BuyerEmail: buyer.Email,
		Status:     entity.OrderApproved,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockRepo.NewMockProductRepository(t))
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			return fn(mockFactory)
		})

	cancelled, err := fx.service.CancelOrder(ctx, buyer, order.ID)

	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotPending)
}

func TestOrderService_MarkPaid_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:         uuid.New(),
		BuyerEmail: buyer.Email,
		Status:     entity.OrderApproved,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	paid, err := fx.service.MarkPaid(ctx, buyer, order.ID, &usecase.MarkPaidInput{TransactionID: "pi_123"})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderPaid, paid.Status)
	assert.Equal(t, "pi_123", paid.TransactionID)
	require.NotNil(t, paid.PaidAt)
	require.Len(t, paid.TrackingHistory, 1)
	assert.Equal(t, "Payment Received", paid.TrackingHistory[0].Status)
}

func TestOrderService_MarkPaid_PendingOrderRefused(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:         uuid.New(),
		BuyerEmail: buyer.Email,
		Status:     entity.OrderPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	paid, err := fx.service.MarkPaid(ctx, buyer, order.ID, &usecase.MarkPaidInput{TransactionID: "pi_123"})

	assert.Nil(t, paid)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotApproved)
}

func TestOrderService_AppendTracking_KeepsStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	manager := testManager()
	order := &entity.Order{
		ID:           uuid.New(),
		ProductOwner: manager.Email,
		Status:       entity.OrderApproved,
		TrackingHistory: []entity.TrackingEntry{
			{Status: "Order Placed"},
			{Status: "Order Approved"},
		},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	updated, err := fx.service.AppendTracking(ctx, manager, order.ID, &usecase.AppendTrackingInput{
		Status: "Cutting started",
		Note:   "Batch 12",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderApproved, updated.Status)
	require.Len(t, updated.TrackingHistory, 3)
	assert.Equal(t, "Cutting started", updated.TrackingHistory[2].Status)
	assert.Equal(t, "Batch 12", updated.TrackingHistory[2].Note)
}

func TestOrderService_PendingForManager_ScopesToOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	manager := testManager()

	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderListFilter{ProductOwner: manager.Email, Status: entity.OrderPending}).
		Return([]*entity.Order{}, nil)

	orders, err := fx.service.PendingForManager(ctx, manager)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_PendingForManager_AdminSeesAll(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	admin := testAdmin()

	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderListFilter{Status: entity.OrderPending}).
		Return([]*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	orders, err := fx.service.PendingForManager(ctx, admin)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_MyOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()

	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderListFilter{BuyerEmail: buyer.Email}).
		Return([]*entity.Order{{ID: uuid.New()}}, nil)

	orders, err := fx.service.MyOrders(ctx, buyer)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_GetOrder_BuyerOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	order := &entity.Order{
		ID:           uuid.New(),
		BuyerEmail:   buyer.Email,
		ProductOwner: "manager@example.com",
		Status:       entity.OrderPending,
		TrackingHistory: []entity.TrackingEntry{
			{Status: "Order Placed", Actor: buyer.Email},
		},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	found, err := fx.service.GetOrder(ctx, buyer, order.ID)

	require.NoError(t, err)
	require.Len(t, found.TrackingHistory, 1)
	assert.Equal(t, "Order Placed", found.TrackingHistory[0].Status)
}

func TestOrderService_GetOrder_OwningManager(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	manager := testManager()
	order := &entity.Order{
		ID:           uuid.New(),
		BuyerEmail:   "buyer@example.com",
		ProductOwner: manager.Email,
		Status:       entity.OrderApproved,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	found, err := fx.service.GetOrder(ctx, manager, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestOrderService_GetOrder_OtherManagerRefused(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	other := testManager()
	other.Email = "other-manager@example.com"
	order := &entity.Order{
		ID:           uuid.New(),
		BuyerEmail:   "buyer@example.com",
		ProductOwner: "manager@example.com",
		Status:       entity.OrderPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	found, err := fx.service.GetOrder(ctx, other, order.ID)

	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetOrder_Admin(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	admin := testAdmin()
	order := &entity.Order{
		ID:           uuid.New(),
		BuyerEmail:   "buyer@example.com",
		ProductOwner: "manager@example.com",
		Status:       entity.OrderPaid,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	found, err := fx.service.GetOrder(ctx, admin, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	found, err := fx.service.GetOrder(ctx, testBuyer(), orderID)

	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
