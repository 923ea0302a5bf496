package postgres

import (
	"context"

	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/repository"
	"loomtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves a single order with its tracking history, oldest entry first.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("TrackingEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_tracking_entries.time ASC")
		}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderListFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Preload("TrackingEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_tracking_entries.time ASC")
		})

	if filter.BuyerEmail != "" {
		query = query.Where("buyer_email = ?", filter.BuyerEmail)
	}
	if filter.ProductOwner != "" {
		query = query.Where("product_owner = ?", filter.ProductOwner)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create persists a new order together with its tracking entries.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	syncTrackingIDs(order, orderM)

	return nil
}

// Update persists status, timestamps and transaction id, and inserts any
// tracking entries appended since the order was loaded. Existing tracking
// rows are never rewritten; the history stays append-only.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	updates := map[string]any{
		"status":         order.Status.String(),
		"transaction_id": order.TransactionID,
		"approved_at":    order.ApprovedAt,
		"paid_at":        order.PaidAt,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	// Insert only entries that do not have a row yet.
	for i := range order.TrackingHistory {
		entry := &order.TrackingHistory[i]
		if entry.ID != uuid.Nil {
			continue
		}

		entryM := &model.TrackingEntryModel{
			OrderID: order.ID,
			Status:  entry.Status,
			Note:    entry.Note,
			Actor:   entry.Actor,
			Time:    entry.Time,
		}
		if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to append tracking entry")
		}
		entry.ID = entryM.ID
	}

	return nil
}

// syncTrackingIDs copies generated IDs back onto the domain entries after insert.
func syncTrackingIDs(order *entity.Order, orderM *model.OrderModel) {
	for i, entryM := range orderM.TrackingEntries {
		if i < len(order.TrackingHistory) {
			order.TrackingHistory[i].ID = entryM.ID
			order.TrackingHistory[i].OrderID = entryM.OrderID
		}
	}
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	history := make([]entity.TrackingEntry, 0, len(data.TrackingEntries))
	for _, entryM := range data.TrackingEntries {
		history = append(history, entity.TrackingEntry{
			ID:      entryM.ID,
			OrderID: entryM.OrderID,
			Status:  entryM.Status,
			Note:    entryM.Note,
			Actor:   entryM.Actor,
			Time:    entryM.Time,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		BuyerEmail:      data.BuyerEmail,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		ProductOwner:    data.ProductOwner,
		OrderQuantity:   data.OrderQuantity,
		UnitPrice:       data.UnitPrice,
		Status:          entity.OrderStatus(data.Status),
		TrackingHistory: history,
		TransactionID:   data.TransactionID,
		CreatedAt:       data.CreatedAt,
		ApprovedAt:      data.ApprovedAt,
		PaidAt:          data.PaidAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	entries := make([]*model.TrackingEntryModel, 0, len(data.TrackingHistory))
	for _, entry := range data.TrackingHistory {
		entries = append(entries, &model.TrackingEntryModel{
			ID:      entry.ID,
			OrderID: entry.OrderID,
			Status:  entry.Status,
			Note:    entry.Note,
			Actor:   entry.Actor,
			Time:    entry.Time,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		BuyerEmail:      data.BuyerEmail,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		ProductOwner:    data.ProductOwner,
		OrderQuantity:   data.OrderQuantity,
		UnitPrice:       data.UnitPrice,
		Status:          data.Status.String(),
		TransactionID:   data.TransactionID,
		CreatedAt:       data.CreatedAt,
		ApprovedAt:      data.ApprovedAt,
		PaidAt:          data.PaidAt,
		TrackingEntries: entries,
	}
}
