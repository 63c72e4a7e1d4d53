package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/sales"
)

// OrderHandler maneja órdenes de venta y facturas (protegido).
type OrderHandler struct {
	uc *sales.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *sales.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create POST /api/sales/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateOrder(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// List GET /api/sales/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// GetByID GET /api/sales/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// UpdateStatus PUT /api/sales/orders/:id/status (admin/manager)
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateOrderStatus(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// ListInvoices GET /api/sales/invoices
func (h *OrderHandler) ListInvoices(c *fiber.Ctx) error {
	out, err := h.uc.ListInvoices(pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// GetInvoice GET /api/sales/invoices/:id
func (h *OrderHandler) GetInvoice(c *fiber.Ctx) error {
	out, err := h.uc.GetInvoice(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// OrderPDF GET /api/sales/orders/:id/pdf — PDF binario, sin envelope.
func (h *OrderHandler) OrderPDF(c *fiber.Ctx) error {
	raw, err := h.uc.GenerateOrderPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="order-`+c.Params("id")+`.pdf"`)
	return c.Send(raw)
}
