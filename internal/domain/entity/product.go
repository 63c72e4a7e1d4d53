package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un SKU del inventario con su conteo de stock autoritativo.
// Quantity es la fila única por SKU (ledger de producto); los cambios de cantidad
// quedan auditados en StockMovement.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	Price         decimal.Decimal // precio de venta vigente
	Cost          decimal.Decimal
	Quantity      int64 // stock actual; nunca negativo vía ajustes (ver StockMovement)
	MinStockLevel int64 // umbral de alerta de stock bajo
	Category      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
