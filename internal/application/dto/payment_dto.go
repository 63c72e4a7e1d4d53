package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentIntentRequest cobro vía Stripe.
type CreatePaymentIntentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	OrderID  string          `json:"order_id"`
}

// PaymentIntentResponse respuesta de Stripe para el cliente web.
type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// CreatePayPalOrderRequest cobro vía PayPal.
type CreatePayPalOrderRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	OrderID  string          `json:"order_id"`
}

// PayPalOrderResponse orden creada en PayPal.
type PayPalOrderResponse struct {
	OrderID     string `json:"orderId"`
	ApprovalURL string `json:"approvalUrl,omitempty"`
}

// CreateSquarePaymentRequest cobro vía Square.
type CreateSquarePaymentRequest struct {
	SourceID string          `json:"source_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	OrderID  string          `json:"order_id"`
}

// SquarePaymentResponse pago creado en Square.
type SquarePaymentResponse struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

// PaymentResponse fila local del espejo de pagos.
type PaymentResponse struct {
	ID            string          `json:"id"`
	Gateway       string          `json:"gateway"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	OrderID       string          `json:"order_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
