package model

import "time"

// SectorKind enumerates the prize kinds a wheel sector or offer can carry.
type SectorKind string

const (
	KindDiscount     SectorKind = "discount"
	KindFreeShipping SectorKind = "free_shipping"
	KindGift         SectorKind = "gift"
	KindRetry        SectorKind = "retry"
	KindNoWin        SectorKind = "no_win"
)

// Wins reports whether the kind converts into an active offer.
// Retry and no-win outcomes never do.
func (k SectorKind) Wins() bool {
	switch k {
	case KindDiscount, KindFreeShipping, KindGift:
		return true
	default:
		return false
	}
}

// Offer is the single promotion currently in effect. At most one exists
// at a time; applying a new one replaces the previous unconditionally.
type Offer struct {
	Kind      SectorKind `json:"kind"`
	Magnitude int        `json:"magnitude"` // percentage, meaningful only for discount
	Label     string     `json:"label"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Expired reports whether the offer's validity window has elapsed at now.
// The boundary instant itself counts as expired.
func (o *Offer) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// OfferResponse is the API response DTO for GET /api/offer.
type OfferResponse struct {
	Offer           *Offer `json:"offer"`
	TimeRemainingMS int64  `json:"time_remaining_ms"`
	DiscountPercent int    `json:"discount_percent"`
	FreeShipping    bool   `json:"free_shipping"`
	Gift            bool   `json:"gift"`
}
