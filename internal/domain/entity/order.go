package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the canonical lifecycle state of an order.
type OrderStatus string

const (
	// OrderPending is the initial state after placement.
	OrderPending OrderStatus = "pending"
	// OrderApproved means the owning manager accepted the order.
	OrderApproved OrderStatus = "approved"
	// OrderRejected is terminal; the manager declined the order.
	OrderRejected OrderStatus = "rejected"
	// OrderCancelled is terminal; the buyer withdrew while still pending.
	OrderCancelled OrderStatus = "cancelled"
	// OrderPaid is terminal; payment was confirmed for an approved order.
	OrderPaid OrderStatus = "paid"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderRejected, OrderCancelled, OrderPaid:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition leaves this state.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderRejected, OrderCancelled, OrderPaid:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the lifecycle graph:
// pending -> {approved, rejected, cancelled}, approved -> paid.
// Paid is reachable from approved only; paying a pending order is rejected.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderApproved || next == OrderRejected || next == OrderCancelled
	case OrderApproved:
		return next == OrderPaid
	default:
		return false
	}
}

// TrackingEntry is one event in an order's append-only tracking history.
// Entries mirror every canonical status transition and may additionally
// carry free-form progress steps that do not change the canonical status.
type TrackingEntry struct {
	ID      uuid.UUID // The unique identifier for the entry.
	OrderID uuid.UUID // The order this entry belongs to.
	Status  string    // Human-readable step label, e.g. "Order Placed", "Cutting started".
	Note    string    // Optional free-form detail supplied by the actor.
	Actor   string    // Email of the user (or system component) that recorded the step.
	Time    time.Time // When the step was recorded.
}

// Order is a buyer's purchase request against a single product.
// TrackingHistory is append-only and chronologically ordered; every
// canonical status transition adds exactly one entry.
type Order struct {
	ID              uuid.UUID       // The unique identifier for the order.
	BuyerEmail      string          // Email of the buyer who placed the order.
	ProductID       uuid.UUID       // The product ordered.
	ProductName     string          // Denormalized listing title at placement time.
	ProductOwner    string          // Denormalized owner email used for manager-side queries.
	OrderQuantity   int             // Units requested.
	UnitPrice       float64         // Price snapshot taken at placement time.
	Status          OrderStatus     // Canonical lifecycle state.
	TrackingHistory []TrackingEntry // Append-only event log, oldest first.
	TransactionID   string          // Payment processor reference, set when paid.
	CreatedAt       time.Time       // Timestamp of placement.
	ApprovedAt      *time.Time      // Set when the order is approved.
	PaidAt          *time.Time      // Set when payment is confirmed.
}

// Total returns the order value in major currency units.
func (o *Order) Total() float64 {
	return o.UnitPrice * float64(o.OrderQuantity)
}

// AppendTracking records a step in the order's history without touching
// the canonical status field.
func (o *Order) AppendTracking(status, note, actor string, at time.Time) {
	o.TrackingHistory = append(o.TrackingHistory, TrackingEntry{
		OrderID: o.ID,
		Status:  status,
		Note:    note,
		Actor:   actor,
		Time:    at,
	})
}
