package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zakispin/spinshop/internal/model"
	"github.com/zakispin/spinshop/pkg/kv"
)

const cartKey = "spinshop:cart"

// CartRepository persists the cart line list as one JSON record,
// independent of the offer record. Cart contents never expire.
type CartRepository struct {
	store kv.Store
}

// NewCartRepository creates a CartRepository on the given store.
func NewCartRepository(store kv.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Save persists the full line list, replacing the previous one.
func (r *CartRepository) Save(ctx context.Context, items []model.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.store.Set(ctx, cartKey, data, 0); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Load returns the persisted cart lines, or an empty list when absent.
// A corrupted record is logged, deleted, and reported as empty.
func (r *CartRepository) Load(ctx context.Context) ([]model.CartItem, error) {
	data, found, err := r.store.Get(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		return []model.CartItem{}, nil
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Msg("discarding corrupted cart record")
		_ = r.store.Delete(ctx, cartKey)
		return []model.CartItem{}, nil
	}
	return items, nil
}

// Delete empties the persisted cart. Idempotent.
func (r *CartRepository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, cartKey); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
