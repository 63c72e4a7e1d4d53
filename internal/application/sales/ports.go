package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita la creación de órdenes. Cabecera, líneas y
// débito de stock se persisten todos o ninguno.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		orders repository.OrderRepository,
	) error) error
}

// InvoiceLine línea del documento de factura para el PDF.
type InvoiceLine struct {
	ProductName string
	Quantity    int64
	Price       decimal.Decimal // snapshot al momento de la venta
	Subtotal    decimal.Decimal
}

// InvoiceDocument datos ya resueltos para renderizar la factura.
type InvoiceDocument struct {
	Number          string
	IssuedAt        time.Time
	BusinessName    string
	CustomerName    string
	ShippingAddress string
	OrderID         string
	Total           decimal.Decimal
	Lines           []InvoiceLine
}

// InvoicePDFGenerator puerto de generación del PDF de la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}
