package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/zakispin/spinshop/internal/catalog"
	"github.com/zakispin/spinshop/internal/model"
	"github.com/zakispin/spinshop/internal/pricing"
)

// DiscountReader is the slice of the offer store the catalog needs to
// show effective prices.
type DiscountReader interface {
	DiscountPercent(ctx context.Context) int
}

// CatalogHandler serves the fixed catalog with prices effective under
// the current offer.
type CatalogHandler struct {
	offers DiscountReader
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(offers DiscountReader) *CatalogHandler {
	return &CatalogHandler{offers: offers}
}

// ListCollections handles GET /api/collections.
func (h *CatalogHandler) ListCollections(c *fiber.Ctx) error {
	return c.JSON(catalog.Collections())
}

// ListProducts handles GET /api/collections/:slug/products.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	slug := c.Params("slug")
	products, ok := catalog.ByCollection(slug)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "collection not found"})
	}

	discount := h.offers.DiscountPercent(c.Context())
	out := make([]model.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, priced(p, discount))
	}
	return c.JSON(out)
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product, ok := catalog.ProductByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(priced(product, h.offers.DiscountPercent(c.Context())))
}

func priced(p model.Product, discountPercent int) model.ProductResponse {
	final := pricing.FinalPrice(p.UnitPrice, discountPercent)
	return model.ProductResponse{
		Product:    p,
		FinalPrice: final,
		Savings:    p.UnitPrice - final,
	}
}
