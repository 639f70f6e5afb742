package handler

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/zakispin/spinshop/internal/model"
	"github.com/zakispin/spinshop/internal/service"
)

// CartServiceInterface defines the interface for cart business logic.
type CartServiceInterface interface {
	Add(ctx context.Context, productID string, customization model.Customization) ([]model.CartItem, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int, customization model.Customization) ([]model.CartItem, error)
	Remove(ctx context.Context, productID string, customization model.Customization) ([]model.CartItem, error)
	Clear(ctx context.Context)
	Snapshot(ctx context.Context) model.CartResponse
}

// CartHandler handles HTTP requests for the cart.
type CartHandler struct {
	service   CartServiceInterface
	validator *validator.Validate
}

// NewCartHandler creates a new CartHandler with the given service and validator.
func NewCartHandler(svc CartServiceInterface, v *validator.Validate) *CartHandler {
	return &CartHandler{service: svc, validator: v}
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot(c.Context()))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req model.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationError(err)})
	}

	if _, err := h.service.Add(c.Context(), req.ProductID, req.Customization); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.service.Snapshot(c.Context()))
}

// UpdateItem handles PUT /api/cart/items. Quantity zero removes the line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var req model.UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationError(err)})
	}

	if _, err := h.service.UpdateQuantity(c.Context(), req.ProductID, *req.Quantity, req.Customization); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not in cart"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(h.service.Snapshot(c.Context()))
}

// RemoveItem handles DELETE /api/cart/items/:id. The customization
// identifying the line, if any, comes in the body.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request: product_id is required"})
	}

	var body struct {
		Customization model.Customization `json:"customization"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	if _, err := h.service.Remove(c.Context(), productID, body.Customization); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not in cart"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(h.service.Snapshot(c.Context()))
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	h.service.Clear(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
