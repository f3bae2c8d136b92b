package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderConfirmed, OrderShipped, true},
		{OrderConfirmed, OrderCancelled, true},
		{OrderShipped, OrderDelivered, true},

		{OrderPending, OrderShipped, false},
		{OrderPending, OrderDelivered, false},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderDelivered, OrderShipped, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderCancelled, false},
		{OrderShipped, OrderConfirmed, false},
		{"bogus", OrderConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(OrderPending))
	assert.True(t, CanCancel(OrderConfirmed))
	assert.False(t, CanCancel(OrderShipped))
	assert.False(t, CanCancel(OrderDelivered))
	// Cancelling twice must fail the second time.
	assert.False(t, CanCancel(OrderCancelled))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.True(t, ValidOrderStatus(s))
	}
	assert.False(t, ValidOrderStatus("processing"))
	assert.False(t, ValidOrderStatus(""))
}
