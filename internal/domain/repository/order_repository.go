package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kellyos/kellyos-api/internal/domain/entity"
)

// OrderSummary fila de listado de órdenes con el nombre del cliente (LEFT JOIN customers).
type OrderSummary struct {
	Order         entity.Order
	CustomerName  string
	CustomerEmail string
}

// InvoiceRow fila de listado de facturas con datos de la orden y el cliente.
type InvoiceRow struct {
	ID           string
	OrderID      string
	Number       string
	IssuedAt     time.Time
	Total        decimal.Decimal
	CustomerName string
	CreatedAt    time.Time
}

// OrderRepository puerto de persistencia para órdenes y sus líneas.
// La orden posee sus líneas (ciclo de vida en cascada); los productos solo
// se referencian.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	List(limit, offset int) ([]OrderSummary, error)
	UpdateStatus(id, status string) (*entity.Order, error)
	UpdatePaymentStatus(id, status string) error

	ListInvoices(limit, offset int) ([]InvoiceRow, error)
	GetInvoiceByID(id string) (*InvoiceRow, error)
	CreateInvoice(id, orderID, number string, issuedAt time.Time) error
}
