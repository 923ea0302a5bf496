package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Quantity carries a CHECK
// constraint so the database itself refuses negative stock.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Quantity    int       `gorm:"not null;check:quantity >= 0"`
	MinOrderQty int       `gorm:"not null;default:1"`
	Category    string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	AddedBy     string    `gorm:"type:varchar(255);not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
