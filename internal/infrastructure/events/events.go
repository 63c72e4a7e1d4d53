package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Tipos de evento de dominio publicados al bus.
const (
	TypeOrderCreated  = "order.created"
	TypeStockAdjusted = "stock.adjusted"
	TypeLowStock      = "stock.low"
)

// Envelope sobre estándar de todos los eventos publicados.
type Envelope struct {
	EventID    string          `json:"event_id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// OrderCreated payload del evento de orden creada (post-commit).
type OrderCreated struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	Total      string `json:"total"`
	Items      int    `json:"items"`
}

// StockAdjusted payload del evento de ajuste de stock (post-commit).
// Quantity es el valor crudo de la petición, no el delta efectivo.
type StockAdjusted struct {
	ProductID   string `json:"product_id"`
	Operation   string `json:"operation"`
	Quantity    int64  `json:"quantity"`
	NewQuantity int64  `json:"new_quantity"`
}

// LowStock payload emitido cuando un ajuste deja al producto en o bajo su umbral.
type LowStock struct {
	ProductID     string `json:"product_id"`
	SKU           string `json:"sku"`
	Quantity      int64  `json:"quantity"`
	MinStockLevel int64  `json:"min_stock_level"`
}

// Wrap arma el sobre de un evento. Panic solo si el payload no es serializable
// (bug de programación, no condición de runtime).
func Wrap(eventType string, payload any) Envelope {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return Envelope{
		EventID:    uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	}
}
