package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SessionServiceInterface defines the interface for the identity boundary.
type SessionServiceInterface interface {
	Login(ctx context.Context, displayName string) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (string, bool)
}

// loginRequest carries the "logged in as X" event from the external
// identity provider. No credentials ever pass through here.
type loginRequest struct {
	DisplayName string `json:"display_name" validate:"required,notblank,max=255"`
}

// SessionHandler handles HTTP requests for the session identity.
type SessionHandler struct {
	service   SessionServiceInterface
	validator *validator.Validate
}

// NewSessionHandler creates a new SessionHandler with the given service and validator.
func NewSessionHandler(svc SessionServiceInterface, v *validator.Validate) *SessionHandler {
	return &SessionHandler{service: svc, validator: v}
}

// GetSession handles GET /api/session.
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	name, loggedIn := h.service.Current(c.Context())
	return c.JSON(fiber.Map{"display_name": name, "logged_in": loggedIn})
}

// Login handles PUT /api/session.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationError(err)})
	}

	if err := h.service.Login(c.Context(), req.DisplayName); err != nil {
		log.Error().Err(err).Msg("failed to store identity")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Logout handles DELETE /api/session.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.Context()); err != nil {
		log.Error().Err(err).Msg("failed to clear identity")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
