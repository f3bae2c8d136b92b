package orderController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/models"
)

func items(pairs ...[2]float64) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, models.OrderItem{Price: p[0], Quantity: int(p[1])})
	}
	return out
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.OrderItem
		subtotal     float64
		tax          float64
		shippingCost float64
		total        float64
	}{
		{
			name:         "free shipping above threshold",
			items:        items([2]float64{60, 1}, [2]float64{50, 1}),
			subtotal:     110,
			tax:          11.00,
			shippingCost: 0,
			total:        121.00,
		},
		{
			name:         "flat fee below threshold",
			items:        items([2]float64{30, 2}),
			subtotal:     60,
			tax:          6.00,
			shippingCost: 10,
			total:        76.00,
		},
		{
			name:         "threshold is strict",
			items:        items([2]float64{100, 1}),
			subtotal:     100,
			tax:          10.00,
			shippingCost: 10,
			total:        120.00,
		},
		{
			name:         "tax rounds to cents",
			items:        items([2]float64{33.33, 1}),
			subtotal:     33.33,
			tax:          3.33,
			shippingCost: 10,
			total:        46.66,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, tax, shippingCost, total := ComputeTotals(tt.items)
			assert.InDelta(t, tt.subtotal, subtotal, 1e-9)
			assert.InDelta(t, tt.tax, tax, 1e-9)
			assert.InDelta(t, tt.shippingCost, shippingCost, 1e-9)
			assert.InDelta(t, tt.total, total, 1e-9)
		})
	}
}

func TestComputeTotalsIdentity(t *testing.T) {
	subtotal, tax, shippingCost, total := ComputeTotals(items([2]float64{19.99, 3}, [2]float64{5.25, 2}))
	require.InDelta(t, subtotal+tax+shippingCost, total, 1e-9)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 10))
	assert.Equal(t, int64(1), TotalPages(1, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(2), TotalPages(11, 10))
	assert.Equal(t, int64(4), TotalPages(37, 10))
}

func TestParsePagination(t *testing.T) {
	page, limit := parsePagination("3", "25")
	assert.Equal(t, int64(3), page)
	assert.Equal(t, int64(25), limit)

	page, limit = parsePagination("garbage", "-1")
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)

	page, limit = parsePagination("0", "")
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)
}
