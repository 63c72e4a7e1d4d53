package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/analytics"
)

// AnalyticsHandler vistas agregadas de solo lectura (protegido).
type AnalyticsHandler struct {
	uc *analytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard GET /api/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Sales GET /api/analytics/sales?days=30&gateway=stripe
func (h *AnalyticsHandler) Sales(c *fiber.Ctx) error {
	days := analytics.ParseRange(c.Query("days"))
	out, err := h.uc.Sales(c.UserContext(), days, c.Query("gateway"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Inventory GET /api/analytics/inventory?days=30
func (h *AnalyticsHandler) Inventory(c *fiber.Ctx) error {
	days := analytics.ParseRange(c.Query("days"))
	out, err := h.uc.Inventory(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Customer GET /api/analytics/customer?days=30
func (h *AnalyticsHandler) Customer(c *fiber.Ctx) error {
	days := analytics.ParseRange(c.Query("days"))
	out, err := h.uc.Customer(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Revenue GET /api/analytics/revenue?days=30&gateway=all
func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	days := analytics.ParseRange(c.Query("days"))
	out, err := h.uc.Revenue(c.UserContext(), days, c.Query("gateway"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}
