package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Quantity      int64           `json:"quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
	Category      string          `json:"category"`
}

// UpdateProductRequest actualización parcial (punteros = campo omitido no cambia).
type UpdateProductRequest struct {
	SKU           *string          `json:"sku"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	MinStockLevel *int64           `json:"min_stock_level"`
	Category      *string          `json:"category"`
}

// ProductResponse representación pública del producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Quantity      int64           `json:"quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
	Category      string          `json:"category,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UpdateStockRequest ajuste de stock: add | subtract | set.
type UpdateStockRequest struct {
	Quantity  int64  `json:"quantity"`
	Operation string `json:"operation"`
}

// StockMovementResponse fila del log de movimientos.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Operation string    `json:"operation"`
	CreatedAt time.Time `json:"created_at"`
}
