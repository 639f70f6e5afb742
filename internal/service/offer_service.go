package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zakispin/spinshop/internal/model"
)

// OfferRepositoryInterface defines the interface for offer persistence.
type OfferRepositoryInterface interface {
	Save(ctx context.Context, offer *model.Offer, ttl time.Duration) error
	Load(ctx context.Context) (*model.Offer, error)
	Delete(ctx context.Context) error
}

// OfferService is the single source of truth for which promotion, if
// any, is active. It holds at most one offer; applying a new one
// replaces the previous unconditionally. Expiry is checked lazily on
// every read and once per second by Watch while an offer is active.
//
// Persistence faults are absorbed: a store that cannot be read or
// written degrades to "no offer", never to a failed request.
type OfferService struct {
	repo OfferRepositoryInterface
	ttl  time.Duration
	now  func() time.Time

	mu    sync.RWMutex
	offer *model.Offer
}

// NewOfferService creates an OfferService with the given repository and
// offer lifetime.
func NewOfferService(repo OfferRepositoryInterface, ttl time.Duration) *OfferService {
	return NewOfferServiceWithClock(repo, ttl, time.Now)
}

// NewOfferServiceWithClock creates an OfferService with a custom clock.
// Primarily used for testing.
func NewOfferServiceWithClock(repo OfferRepositoryInterface, ttl time.Duration, now func() time.Time) *OfferService {
	return &OfferService{repo: repo, ttl: ttl, now: now}
}

// Restore loads the persisted offer into memory. A record that expired
// while the process was down is cleared immediately. Called once at
// startup, before the service is handed to consumers.
func (s *OfferService) Restore(ctx context.Context) {
	offer, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("offer restore failed, starting without offer")
		return
	}
	if offer == nil {
		return
	}
	if offer.Expired(s.now()) {
		if err := s.repo.Delete(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to clear expired offer record")
		}
		return
	}

	s.mu.Lock()
	s.offer = offer
	s.mu.Unlock()
	log.Info().
		Str("kind", string(offer.Kind)).
		Time("expires_at", offer.ExpiresAt).
		Msg("restored active offer")
}

// Apply activates a new offer with expiry now+TTL, replacing any prior
// offer. The persisted record carries the same TTL so the store evicts
// it on its own.
func (s *OfferService) Apply(ctx context.Context, kind model.SectorKind, magnitude int, label string) *model.Offer {
	offer := &model.Offer{
		Kind:      kind,
		Magnitude: magnitude,
		Label:     label,
		ExpiresAt: s.now().Add(s.ttl),
	}

	if err := s.repo.Save(ctx, offer, s.ttl); err != nil {
		// The offer still applies for this session; only durability is lost.
		log.Warn().Err(err).Msg("failed to persist offer")
	}

	s.mu.Lock()
	s.offer = offer
	s.mu.Unlock()

	log.Info().
		Str("kind", string(kind)).
		Int("magnitude", magnitude).
		Time("expires_at", offer.ExpiresAt).
		Msg("offer applied")
	return offer
}

// Clear removes the active offer. Clearing when none is active is a
// no-op, not an error.
func (s *OfferService) Clear(ctx context.Context) {
	if err := s.repo.Delete(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to delete offer record")
	}

	s.mu.Lock()
	cleared := s.offer != nil
	s.offer = nil
	s.mu.Unlock()

	if cleared {
		log.Info().Msg("offer cleared")
	}
}

// Current returns the active offer, or nil. An offer past its expiry is
// treated as absent and cleaned up as a side effect.
func (s *OfferService) Current(ctx context.Context) *model.Offer {
	s.mu.RLock()
	offer := s.offer
	s.mu.RUnlock()

	if offer == nil {
		return nil
	}
	if offer.Expired(s.now()) {
		s.Clear(ctx)
		return nil
	}
	return offer
}

// DiscountPercent returns the active discount percentage, or 0.
func (s *OfferService) DiscountPercent(ctx context.Context) int {
	if offer := s.Current(ctx); offer != nil && offer.Kind == model.KindDiscount {
		return offer.Magnitude
	}
	return 0
}

// HasFreeShipping reports whether a free-shipping offer is active.
func (s *OfferService) HasFreeShipping(ctx context.Context) bool {
	offer := s.Current(ctx)
	return offer != nil && offer.Kind == model.KindFreeShipping
}

// HasGift reports whether a gift offer is active.
func (s *OfferService) HasGift(ctx context.Context) bool {
	offer := s.Current(ctx)
	return offer != nil && offer.Kind == model.KindGift
}

// TimeRemaining returns the active offer's remaining lifetime in
// milliseconds, or 0 when absent.
func (s *OfferService) TimeRemaining(ctx context.Context) int64 {
	offer := s.Current(ctx)
	if offer == nil {
		return 0
	}
	remaining := offer.ExpiresAt.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining.Milliseconds()
}

// Watch clears the offer once its lifetime elapses, checking once per
// second. The tick is a no-op while no offer is active. Returns when
// ctx is canceled.
func (s *OfferService) Watch(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			expired := s.offer != nil && s.offer.Expired(s.now())
			s.mu.RUnlock()
			if expired {
				log.Info().Msg("offer expired")
				s.Clear(ctx)
			}
		}
	}
}
