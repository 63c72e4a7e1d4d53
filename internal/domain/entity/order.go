package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Estados de pago de la orden (espejo del módulo de pagos).
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Order cabecera de una orden de venta. Total se calcula al crear la orden
// como Σ(precio_vigente × cantidad) y no se recalcula después.
type Order struct {
	ID              string
	CustomerID      string
	Total           decimal.Decimal
	Status          string
	PaymentStatus   string
	ShippingAddress string
	Notes           string
	CreatedBy       string // UserID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem línea de la orden. Price es un snapshot del precio del producto
// al momento de crear la orden, NO una referencia viva a Product.Price.
// Invariante documentado: cambiar el precio del producto después no altera la línea.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	Price     decimal.Decimal // snapshot
}
