package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/auth"
	"github.com/kellyos/kellyos-api/internal/application/dto"
)

// AuthHandler maneja registro, login y refresh (rutas públicas).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Refresh POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Refresh(in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// Logout POST /api/auth/logout — los JWT son stateless: el cliente
// descarta sus tokens y el access expira solo.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return ok(c, fiber.Map{"logged_out": true})
}
