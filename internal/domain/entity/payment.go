package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pasarelas de pago soportadas.
const (
	GatewayStripe = "stripe"
	GatewayPayPal = "paypal"
	GatewaySquare = "square"
)

// Estados locales de un pago (espejo del estado en la pasarela).
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment fila local que refleja el estado de una transacción en una pasarela
// externa. TransactionID es el identificador de la pasarela; los webhooks
// actualizan Status por ese campo.
type Payment struct {
	ID            string
	Gateway       string // stripe | paypal | square
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	Status        string // pending | completed | failed
	OrderID       string // opcional: orden asociada
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
