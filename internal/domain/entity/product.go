package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus marks whether a listing is visible to buyers.
type ProductStatus string

const (
	// ProductActive listings are visible and orderable.
	ProductActive ProductStatus = "active"
	// ProductInactive listings are hidden from the public catalog.
	ProductInactive ProductStatus = "inactive"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	return s == ProductActive || s == ProductInactive
}

// Product is a garments listing owned by the manager who created it.
// Quantity is the live stock counter decremented by order placement;
// it must never go negative.
type Product struct {
	ID          uuid.UUID     // The unique identifier for the product.
	Name        string        // Listing title.
	Price       float64       // Unit price in major currency units (e.g. dollars).
	Quantity    int           // Units currently in stock.
	MinOrderQty int           // Smallest quantity a single order may request.
	Category    string        // Free-form category label.
	Description string        // Listing body text.
	ImageURL    string        // Product image URL.
	AddedBy     string        // Email of the manager who created the listing.
	Status      ProductStatus // active or inactive.
	CreatedAt   time.Time     // Timestamp of listing creation.
	UpdatedAt   time.Time     // Timestamp of the last modification.
}
