package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/zakispin/spinshop/internal/model"
)

// OfferServiceInterface defines the consumer interface exposed by the
// offer store.
type OfferServiceInterface interface {
	Current(ctx context.Context) *model.Offer
	Clear(ctx context.Context)
	DiscountPercent(ctx context.Context) int
	HasFreeShipping(ctx context.Context) bool
	HasGift(ctx context.Context) bool
	TimeRemaining(ctx context.Context) int64
}

// OfferHandler handles HTTP requests for the active offer.
type OfferHandler struct {
	service OfferServiceInterface
}

// NewOfferHandler creates a new OfferHandler with the given service.
func NewOfferHandler(svc OfferServiceInterface) *OfferHandler {
	return &OfferHandler{service: svc}
}

// GetOffer handles GET /api/offer: the active offer (null when absent)
// with its remaining time and derived pricing flags.
func (h *OfferHandler) GetOffer(c *fiber.Ctx) error {
	ctx := c.Context()
	return c.JSON(model.OfferResponse{
		Offer:           h.service.Current(ctx),
		TimeRemainingMS: h.service.TimeRemaining(ctx),
		DiscountPercent: h.service.DiscountPercent(ctx),
		FreeShipping:    h.service.HasFreeShipping(ctx),
		Gift:            h.service.HasGift(ctx),
	})
}

// DeleteOffer handles DELETE /api/offer. Clearing an absent offer
// succeeds the same way.
func (h *OfferHandler) DeleteOffer(c *fiber.Ctx) error {
	h.service.Clear(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
