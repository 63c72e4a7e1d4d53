package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create POST /api/inventory/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// GetByID GET /api/inventory/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// List GET /api/inventory/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Update PUT /api/inventory/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Delete DELETE /api/inventory/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.Map{"deleted": true})
}
