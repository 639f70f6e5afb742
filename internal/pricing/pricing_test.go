package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zakispin/spinshop/internal/model"
)

func TestFinalPrice_RoundsToNearestUnit(t *testing.T) {
	// 249 * 0.70 = 174.3 -> 174
	assert.Equal(t, 174, FinalPrice(249, 30))
	// 279 * 0.90 = 251.1 -> 251
	assert.Equal(t, 251, FinalPrice(279, 10))
	// 199 * 0.70 = 139.3 -> 139
	assert.Equal(t, 139, FinalPrice(199, 30))
}

func TestFinalPrice_NoDiscountReturnsBase(t *testing.T) {
	assert.Equal(t, 249, FinalPrice(249, 0))
	assert.Equal(t, 129, FinalPrice(129, -5), "negative discount must not inflate the price")
}

func TestOrderTotals_DocumentedScenario(t *testing.T) {
	items := []model.CartItem{
		{ProductID: "MA-1", UnitPrice: 249, Quantity: 1},
		{ProductID: "MA-9", UnitPrice: 129, Quantity: 2},
	}

	totals := OrderTotals(items, 10, false)

	assert.InDelta(t, 507, totals.Subtotal, 1e-9)
	assert.InDelta(t, 50.7, totals.DiscountAmount, 1e-9)
	assert.InDelta(t, 50, totals.Shipping, 1e-9)
	assert.InDelta(t, 506.3, totals.Total, 1e-9)
}

func TestOrderTotals_FreeShipping(t *testing.T) {
	items := []model.CartItem{{ProductID: "MA-1", UnitPrice: 200, Quantity: 1}}

	totals := OrderTotals(items, 0, true)

	assert.InDelta(t, 200, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0, totals.Shipping, 1e-9)
	assert.InDelta(t, 200, totals.Total, 1e-9)
}

func TestOrderTotals_NoOfferChargesFlatRate(t *testing.T) {
	items := []model.CartItem{{ProductID: "MA-1", UnitPrice: 100, Quantity: 3}}

	totals := OrderTotals(items, 0, false)

	assert.InDelta(t, 300, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0, totals.DiscountAmount, 1e-9)
	assert.InDelta(t, float64(FlatShippingRate), totals.Shipping, 1e-9)
	assert.InDelta(t, 350, totals.Total, 1e-9)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "249 MAD", FormatPrice(249))
	assert.Equal(t, "0 MAD", FormatPrice(0))
}
