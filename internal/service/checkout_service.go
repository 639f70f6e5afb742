package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/zakispin/spinshop/internal/model"
	"github.com/zakispin/spinshop/internal/pricing"
)

// OrderRepositoryInterface defines the interface for order persistence.
type OrderRepositoryInterface interface {
	Insert(ctx context.Context, order *model.Order) error
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
}

// OfferFlags is the slice of the offer store checkout reads. Pricing
// itself stays pure; the flags are resolved here and passed down.
type OfferFlags interface {
	DiscountPercent(ctx context.Context) int
	HasFreeShipping(ctx context.Context) bool
}

// CartReader is the slice of the cart checkout consumes.
type CartReader interface {
	Items(ctx context.Context) []model.CartItem
	Clear(ctx context.Context)
}

// CheckoutService places simulated orders: no payment is charged, the
// order is recorded and the cart cleared.
type CheckoutService struct {
	orders OrderRepositoryInterface
	cart   CartReader
	offers OfferFlags
	now    func() time.Time
}

// NewCheckoutService creates a CheckoutService.
func NewCheckoutService(orders OrderRepositoryInterface, cart CartReader, offers OfferFlags) *CheckoutService {
	return NewCheckoutServiceWithClock(orders, cart, offers, time.Now)
}

// NewCheckoutServiceWithClock creates a CheckoutService with a custom
// clock. Primarily used for testing.
func NewCheckoutServiceWithClock(orders OrderRepositoryInterface, cart CartReader, offers OfferFlags, now func() time.Time) *CheckoutService {
	return &CheckoutService{orders: orders, cart: cart, offers: offers, now: now}
}

// PlaceOrder totals the cart under the current offer, records the
// order, and clears the cart.
// Returns ErrEmptyCart when there is nothing to order.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	items := s.cart.Items(ctx)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	discount := s.offers.DiscountPercent(ctx)
	freeShipping := s.offers.HasFreeShipping(ctx)
	totals := pricing.OrderTotals(items, discount, freeShipping)

	order := &model.Order{
		Number:          strings.ToUpper(xid.New().String()),
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountPercent: discount,
		DiscountAmount:  totals.DiscountAmount,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		CustomerName:    strings.TrimSpace(req.FirstName + " " + req.LastName),
		Email:           req.Email,
		City:            req.City,
		Address:         req.Address,
		CreatedAt:       s.now(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	s.cart.Clear(ctx)

	log.Info().
		Str("order_number", order.Number).
		Float64("total", order.Total).
		Int("discount_percent", discount).
		Bool("free_shipping", freeShipping).
		Msg("order placed")
	return order, nil
}

// GetOrder retrieves a placed order by its public number.
// Returns ErrOrderNotFound when it doesn't exist.
func (s *CheckoutService) GetOrder(ctx context.Context, number string) (*model.Order, error) {
	order, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
