package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/inventory"
)

// InventoryHandler maneja ajustes de stock, historial y alertas (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AdjustStock POST /api/inventory/products/:id/stock
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AdjustStock(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// ListMovements GET /api/inventory/products/:id/movements
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.Params("id"), pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// ListLowStock GET /api/inventory/low-stock
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}
