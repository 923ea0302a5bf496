package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. ProductName and ProductOwner are
// denormalized at placement time so manager-side listings avoid a join
// and survive later product edits.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerEmail    string    `gorm:"type:varchar(255);not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName   string    `gorm:"type:varchar(255);not null"`
	ProductOwner  string    `gorm:"type:varchar(255);not null;index"`
	OrderQuantity int       `gorm:"not null"`
	UnitPrice     float64   `gorm:"type:numeric(12,2);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	TransactionID string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ApprovedAt    *time.Time
	PaidAt        *time.Time

	TrackingEntries []*TrackingEntryModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// TrackingEntryModel mirrors the 'order_tracking_entries' table: the
// append-only event log attached to each order.
type TrackingEntryModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status  string    `gorm:"type:varchar(255);not null"`
	Note    string    `gorm:"type:text"`
	Actor   string    `gorm:"type:varchar(255);not null"`
	Time    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TrackingEntryModel) TableName() string {
	return "order_tracking_entries"
}
