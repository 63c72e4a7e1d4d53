package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/infrastructure/gateway"
)

// ok responde 200 con el envelope estándar.
func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.OK(data))
}

// created responde 201 con el envelope estándar.
func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

// fail responde un error con código y mensaje en el envelope.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Fail(code, message))
}

// badBody respuesta estándar para JSON malformado.
func badBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// respondError mapea los errores de dominio a estados HTTP.
// Lo no mapeado es 500 sin filtrar el detalle interno al cliente.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "datos inválidos")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "el email ya está registrado")
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "el recurso ya existe")
	case errors.Is(err, gateway.ErrInvalidSignature):
		return fail(c, fiber.StatusBadRequest, "INVALID_SIGNATURE", "firma de webhook inválida")
	case errors.Is(err, gateway.ErrGateway):
		return fail(c, fiber.StatusBadGateway, "GATEWAY", "error de la pasarela de pago")
	default:
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
	}
}

// pageFrom lee limit/offset del query string.
func pageFrom(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page
}
