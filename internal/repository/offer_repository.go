package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zakispin/spinshop/internal/model"
	"github.com/zakispin/spinshop/pkg/kv"
)

// offerKey is the single cell holding the serialized active offer.
const offerKey = "spinshop:offer"

// OfferRepository persists the active offer as one JSON record in the
// key-value store. Only the offer service writes through it.
type OfferRepository struct {
	store kv.Store
}

// NewOfferRepository creates an OfferRepository on the given store.
func NewOfferRepository(store kv.Store) *OfferRepository {
	return &OfferRepository{store: store}
}

// Save persists offer, overwriting any prior record. The key's TTL is
// aligned with the offer lifetime so the backend evicts it on its own.
func (r *OfferRepository) Save(ctx context.Context, offer *model.Offer, ttl time.Duration) error {
	data, err := json.Marshal(offer)
	if err != nil {
		return fmt.Errorf("marshal offer: %w", err)
	}
	if err := r.store.Set(ctx, offerKey, data, ttl); err != nil {
		return fmt.Errorf("save offer: %w", err)
	}
	return nil
}

// Load returns the persisted offer, or nil when absent. A corrupted
// record is logged, deleted, and reported as absence rather than as an
// error.
func (r *OfferRepository) Load(ctx context.Context) (*model.Offer, error) {
	data, found, err := r.store.Get(ctx, offerKey)
	if err != nil {
		return nil, fmt.Errorf("load offer: %w", err)
	}
	if !found {
		return nil, nil
	}

	var offer model.Offer
	if err := json.Unmarshal(data, &offer); err != nil {
		log.Warn().Err(err).Msg("discarding corrupted offer record")
		_ = r.store.Delete(ctx, offerKey)
		return nil, nil
	}
	return &offer, nil
}

// Delete removes the persisted offer. Idempotent.
func (r *OfferRepository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, offerKey); err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}
