package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/usecase"
)

// CustomerHandler maneja clientes e interacciones CRM (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/crm/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// List GET /api/crm/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// GetByID GET /api/crm/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Update PUT /api/crm/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Delete DELETE /api/crm/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.Map{"deleted": true})
}

// CreateInteraction POST /api/crm/interactions
func (h *CustomerHandler) CreateInteraction(c *fiber.Ctx) error {
	var in dto.CreateInteractionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateInteraction(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// ListInteractions GET /api/crm/customers/:id/interactions
func (h *CustomerHandler) ListInteractions(c *fiber.Ctx) error {
	out, err := h.uc.ListInteractions(c.Params("id"), pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}
