// Package pricing computes effective prices under the active promotion.
// Everything here is pure: callers pass the already-resolved discount
// and shipping flags, the package never reads promo state itself.
package pricing

import (
	"fmt"
	"math"

	"github.com/zakispin/spinshop/internal/model"
)

// FlatShippingRate is the fixed shipping cost charged when no
// free-shipping offer is active.
const FlatShippingRate = 50

// Currency is the zero-decimal display currency used across the store.
const Currency = "MAD"

// FinalPrice returns the unit price after the wheel discount, rounded
// to the nearest whole unit. Without a discount the base price is
// returned unchanged.
func FinalPrice(basePrice, discountPercent int) int {
	if discountPercent <= 0 {
		return basePrice
	}
	return int(math.Round(float64(basePrice) * (1 - float64(discountPercent)/100)))
}

// Totals is the order-total breakdown shown on cart and checkout.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Shipping       float64 `json:"shipping"`
	Total          float64 `json:"total"`
}

// OrderTotals computes the order breakdown for the given lines.
// subtotal = Σ(unit_price × quantity); the discount applies to the
// subtotal only, never to shipping.
func OrderTotals(items []model.CartItem, discountPercent int, freeShipping bool) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.UnitPrice * item.Quantity)
	}

	discountAmount := subtotal * float64(discountPercent) / 100

	shipping := float64(FlatShippingRate)
	if freeShipping {
		shipping = 0
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Shipping:       shipping,
		Total:          subtotal - discountAmount + shipping,
	}
}

// FormatPrice renders a whole-unit price for display, e.g. "249 MAD".
func FormatPrice(price int) string {
	return fmt.Sprintf("%d %s", price, Currency)
}
