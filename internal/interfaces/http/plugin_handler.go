package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/plugins"
)

// PluginHandler expone el ciclo de vida de los plugins. Las mutaciones
// requieren rol admin.
type PluginHandler struct {
	manager *plugins.Manager
}

// NewPluginHandler construye el handler.
func NewPluginHandler(manager *plugins.Manager) *PluginHandler {
	return &PluginHandler{manager: manager}
}

// List GET /api/plugins
func (h *PluginHandler) List(c *fiber.Ctx) error {
	out, err := h.manager.List()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// GetByID GET /api/plugins/:id
func (h *PluginHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.manager.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Install POST /api/plugins/install (admin)
func (h *PluginHandler) Install(c *fiber.Ctx) error {
	var in dto.InstallPluginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.manager.Install(in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// Enable POST /api/plugins/:id/enable (admin)
func (h *PluginHandler) Enable(c *fiber.Ctx) error {
	out, err := h.manager.Enable(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Disable POST /api/plugins/:id/disable (admin)
func (h *PluginHandler) Disable(c *fiber.Ctx) error {
	out, err := h.manager.Disable(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Uninstall DELETE /api/plugins/:id (admin)
func (h *PluginHandler) Uninstall(c *fiber.Ctx) error {
	if err := h.manager.Uninstall(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.Map{"uninstalled": true})
}
