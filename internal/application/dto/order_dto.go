package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea pedida: producto y cantidad.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateOrderRequest creación de orden de venta.
type CreateOrderRequest struct {
	CustomerID      string             `json:"customer_id"`
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress string             `json:"shipping_address"`
	Notes           string             `json:"notes"`
}

// UpdateOrderStatusRequest cambio de estado de la orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea de la orden con el precio snapshot.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderResponse orden completa (cabecera + líneas).
type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customer_id"`
	CustomerName    string              `json:"customer_name,omitempty"`
	CustomerEmail   string              `json:"customer_email,omitempty"`
	Total           decimal.Decimal     `json:"total"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	CreatedBy       string              `json:"created_by,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// InvoiceResponse factura de venta (lectura).
type InvoiceResponse struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	Number       string          `json:"number"`
	IssuedAt     time.Time       `json:"issued_at"`
	Total        decimal.Decimal `json:"total"`
	CustomerName string          `json:"customer_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
