package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/payments"
)

// PaymentHandler maneja cobros vía pasarelas externas y sus webhooks.
// Las rutas de webhook son públicas: cada pasarela firma o identifica
// sus propios eventos.
type PaymentHandler struct {
	uc *payments.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateStripeIntent POST /api/payments/stripe/create-payment-intent
func (h *PaymentHandler) CreateStripeIntent(c *fiber.Ctx) error {
	var in dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateStripeIntent(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// CreatePayPalOrder POST /api/payments/paypal/create-order
func (h *PaymentHandler) CreatePayPalOrder(c *fiber.Ctx) error {
	var in dto.CreatePayPalOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreatePayPalOrder(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// CreateSquarePayment POST /api/payments/square/create-payment
func (h *PaymentHandler) CreateSquarePayment(c *fiber.Ctx) error {
	var in dto.CreateSquarePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateSquarePayment(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// StripeWebhook POST /api/payments/webhooks/stripe (público).
// La verificación HMAC necesita el cuerpo crudo, no el JSON parseado.
func (h *PaymentHandler) StripeWebhook(c *fiber.Ctx) error {
	if err := h.uc.HandleStripeWebhook(c.Body(), c.Get("Stripe-Signature")); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.Map{"received": true})
}

// PayPalWebhook POST /api/payments/webhooks/paypal (público).
func (h *PaymentHandler) PayPalWebhook(c *fiber.Ctx) error {
	var body payments.PayPalWebhook
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	if err := h.uc.HandlePayPalWebhook(body); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.Map{"received": true})
}

// SquareWebhook POST /api/payments/webhooks/square (público).
func (h *PaymentHandler) SquareWebhook(c *fiber.Ctx) error {
	var body payments.SquareWebhook
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	if err := h.uc.HandleSquareWebhook(body); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.Map{"received": true})
}

// GetPayment GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	out, err := h.uc.GetPayment(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// ListPayments GET /api/payments/history
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	out, err := h.uc.ListPayments(pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}
