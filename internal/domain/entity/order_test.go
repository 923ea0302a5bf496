package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to approved", from: OrderPending, to: OrderApproved, want: true},
		{name: "pending to rejected", from: OrderPending, to: OrderRejected, want: true},
		{name: "pending to cancelled", from: OrderPending, to: OrderCancelled, want: true},
		{name: "pending to paid is blocked", from: OrderPending, to: OrderPaid, want: false},
		{name: "approved to paid", from: OrderApproved, to: OrderPaid, want: true},
		{name: "approved to cancelled is blocked", from: OrderApproved, to: OrderCancelled, want: false},
		{name: "rejected is terminal", from: OrderRejected, to: OrderApproved, want: false},
		{name: "cancelled is terminal", from: OrderCancelled, to: OrderPaid, want: false},
		{name: "paid is terminal", from: OrderPaid, to: OrderPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderPending.IsTerminal())
	assert.False(t, OrderApproved.IsTerminal())
	assert.True(t, OrderRejected.IsTerminal())
	assert.True(t, OrderCancelled.IsTerminal())
	assert.True(t, OrderPaid.IsTerminal())
}

func TestOrder_AppendTracking(t *testing.T) {
	order := &Order{Status: OrderPending}

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	order.AppendTracking("Order Placed", "", "buyer@example.com", first)
	order.AppendTracking("Order Approved", "", "manager@example.com", first.Add(time.Hour))

	assert.Len(t, order.TrackingHistory, 2)
	assert.Equal(t, "Order Placed", order.TrackingHistory[0].Status)
	assert.Equal(t, "Order Approved", order.TrackingHistory[1].Status)
	assert.True(t, order.TrackingHistory[0].Time.Before(order.TrackingHistory[1].Time))
	// Appending a free-form step must not touch the canonical status.
	assert.Equal(t, OrderPending, order.Status)
}

func TestOrder_Total(t *testing.T) {
	order := &Order{UnitPrice: 12.5, OrderQuantity: 4}
	assert.InDelta(t, 50.0, order.Total(), 1e-9)
}
