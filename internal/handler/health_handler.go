package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Pinger is an interface for health check ping operations.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests against both backing
// stores.
type HealthHandler struct {
	kv Pinger
	db Pinger
}

// NewHealthHandler creates a new HealthHandler with the given stores.
func NewHealthHandler(kv, db Pinger) *HealthHandler {
	return &HealthHandler{kv: kv, db: db}
}

// Check performs a health check by pinging the promo store and the
// orders database.
// Returns 200 OK with {"status": "healthy"} when both are reachable.
// Returns 503 Service Unavailable otherwise.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.kv.Ping(c.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: promo store unreachable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  "promo store connection failed",
		})
	}
	if err := h.db.Ping(c.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: database unreachable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  "database connection failed",
		})
	}
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}
