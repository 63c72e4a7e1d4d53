package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/pkg/jwt"
)

// Locals keys cargadas por AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae userID, email y role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		userID, email, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de
// AuthMiddleware. Token sin claim de rol → 401; rol no permitido → 403.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_ROLE", "token sin rol")
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "rol sin permiso para esta operación")
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail devuelve el email del contexto.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
