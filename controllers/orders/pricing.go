package orderController

import (
	"math"

	"storefront-api/models"
)

const (
	taxRate          = 0.10
	freeShippingOver = 100.0
	flatShippingFee  = 10.0
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals derives the money fields of an order from its item snapshots:
// tax is 10% of the subtotal rounded to cents, shipping is free strictly above
// the threshold and a flat fee otherwise.
func ComputeTotals(items []models.OrderItem) (subtotal, tax, shippingCost, total float64) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	tax = round2(subtotal * taxRate)

	shippingCost = flatShippingFee
	if subtotal > freeShippingOver {
		shippingCost = 0
	}

	total = subtotal + tax + shippingCost
	return subtotal, tax, shippingCost, total
}
