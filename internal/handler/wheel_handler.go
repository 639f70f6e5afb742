package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/zakispin/spinshop/internal/model"
	"github.com/zakispin/spinshop/internal/service"
)

// WheelServiceInterface defines the interface for the wheel engine.
type WheelServiceInterface interface {
	Sectors() []model.WheelSector
	Spin(ctx context.Context) (model.SpinState, error)
	State(ctx context.Context) model.SpinState
	Reset() model.SpinState
}

// WheelHandler handles HTTP requests for the spin wheel.
type WheelHandler struct {
	service WheelServiceInterface
}

// NewWheelHandler creates a new WheelHandler with the given service.
func NewWheelHandler(svc WheelServiceInterface) *WheelHandler {
	return &WheelHandler{service: svc}
}

// GetWheel handles GET /api/wheel: the sector table plus current state.
func (h *WheelHandler) GetWheel(c *fiber.Ctx) error {
	return c.JSON(model.WheelResponse{
		Sectors: h.service.Sectors(),
		State:   h.service.State(c.Context()),
	})
}

// Spin handles POST /api/wheel/spin. Spinning while a spin is in flight
// returns the in-flight state unchanged; spinning a locked wheel is 409.
func (h *WheelHandler) Spin(c *fiber.Ctx) error {
	state, err := h.service.Spin(c.Context())
	if err != nil {
		if errors.Is(err, service.ErrWheelLocked) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "wheel is locked"})
		}
		log.Error().Err(err).Msg("failed to spin wheel")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(state)
}

// Result handles GET /api/wheel/result. While the spin duration has not
// elapsed the state is still "spinning"; afterwards it carries the
// settled outcome.
func (h *WheelHandler) Result(c *fiber.Ctx) error {
	return c.JSON(h.service.State(c.Context()))
}

// Reset handles POST /api/wheel/reset, the page-reload analog: it
// re-enables spinning without touching any won offer.
func (h *WheelHandler) Reset(c *fiber.Ctx) error {
	return c.JSON(h.service.Reset())
}
