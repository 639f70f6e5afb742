package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/zakispin/spinshop/internal/catalog"
	"github.com/zakispin/spinshop/internal/model"
)

// CartRepositoryInterface defines the interface for cart persistence.
type CartRepositoryInterface interface {
	Save(ctx context.Context, items []model.CartItem) error
	Load(ctx context.Context) ([]model.CartItem, error)
	Delete(ctx context.Context) error
}

// CartService manages the cart line list with write-through
// persistence. A line's identity is the product id plus the full
// customization; the same product with a different print is a separate
// line. Persistence faults degrade to an empty cart, never to a failed
// request.
type CartService struct {
	repo CartRepositoryInterface
	mu   sync.Mutex
}

// NewCartService creates a CartService with the given repository.
func NewCartService(repo CartRepositoryInterface) *CartService {
	return &CartService{repo: repo}
}

// Add puts one unit of a product in the cart, merging with an existing
// line when product and customization both match.
// Returns ErrProductNotFound for an unknown product id.
func (s *CartService) Add(ctx context.Context, productID string, customization model.Customization) ([]model.CartItem, error) {
	product, ok := catalog.ProductByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	merged := false
	for i := range items {
		if items[i].ProductID == productID && items[i].Customization == customization {
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{
			ProductID:     product.ID,
			Name:          product.Name,
			UnitPrice:     product.UnitPrice,
			Quantity:      1,
			Customization: customization,
		})
	}

	s.save(ctx, items)
	return items, nil
}

// UpdateQuantity sets a line's quantity; zero removes the line.
// Returns ErrItemNotFound when no matching line exists.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int, customization model.Customization) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	for i := range items {
		if items[i].ProductID != productID || items[i].Customization != customization {
			continue
		}
		if quantity == 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		s.save(ctx, items)
		return items, nil
	}
	return nil, ErrItemNotFound
}

// Remove deletes a line regardless of quantity.
// Returns ErrItemNotFound when no matching line exists.
func (s *CartService) Remove(ctx context.Context, productID string, customization model.Customization) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	for i := range items {
		if items[i].ProductID == productID && items[i].Customization == customization {
			items = append(items[:i], items[i+1:]...)
			s.save(ctx, items)
			return items, nil
		}
	}
	return nil, ErrItemNotFound
}

// Clear empties the cart. Idempotent.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to clear cart record")
	}
}

// Items returns the current cart lines.
func (s *CartService) Items(ctx context.Context) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Snapshot returns the cart with its derived count and subtotal.
func (s *CartService) Snapshot(ctx context.Context) model.CartResponse {
	items := s.Items(ctx)

	count, subtotal := 0, 0
	for _, item := range items {
		count += item.Quantity
		subtotal += item.UnitPrice * item.Quantity
	}
	return model.CartResponse{Items: items, Count: count, Subtotal: subtotal}
}

func (s *CartService) load(ctx context.Context) []model.CartItem {
	items, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cart load failed, treating as empty")
		return []model.CartItem{}
	}
	return items
}

func (s *CartService) save(ctx context.Context, items []model.CartItem) {
	if err := s.repo.Save(ctx, items); err != nil {
		log.Warn().Err(err).Msg("failed to persist cart")
	}
}
