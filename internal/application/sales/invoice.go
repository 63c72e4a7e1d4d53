package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
)

// issueInvoice emite la factura de una orden pagada. El número es
// INV-YYYYMMDD-XXXXXXXX (fragmento del UUID de la factura). La unicidad por
// orden la garantiza la DB: un duplicado devuelve ErrDuplicate.
func (uc *UseCase) issueInvoice(order *entity.Order) error {
	id := uuid.New().String()
	now := time.Now()
	number := fmt.Sprintf("INV-%s-%s", now.Format("20060102"), strings.ToUpper(id[:8]))
	return uc.orders.CreateInvoice(id, order.ID, number, now)
}

// ListInvoices lista facturas emitidas, más recientes primero.
func (uc *UseCase) ListInvoices(page dto.PageRequest) ([]dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.orders.ListInvoices(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InvoiceResponse, 0, len(list))
	for _, row := range list {
		result = append(result, dto.InvoiceResponse{
			ID:           row.ID,
			OrderID:      row.OrderID,
			Number:       row.Number,
			IssuedAt:     row.IssuedAt,
			Total:        row.Total,
			CustomerName: row.CustomerName,
			CreatedAt:    row.CreatedAt,
		})
	}
	return result, nil
}

// GetInvoice obtiene una factura por ID.
func (uc *UseCase) GetInvoice(id string) (*dto.InvoiceResponse, error) {
	row, err := uc.orders.GetInvoiceByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceResponse{
		ID:           row.ID,
		OrderID:      row.OrderID,
		Number:       row.Number,
		IssuedAt:     row.IssuedAt,
		Total:        row.Total,
		CustomerName: row.CustomerName,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// GenerateOrderPDF arma el documento de la orden y lo renderiza como PDF.
// Para órdenes aún sin factura emitida se usa un número provisional basado
// en el ID de la orden.
func (uc *UseCase) GenerateOrderPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	doc := &InvoiceDocument{
		Number:          "ORD-" + strings.ToUpper(orderID[:8]),
		IssuedAt:        order.CreatedAt,
		BusinessName:    uc.businessName,
		CustomerName:    order.CustomerName,
		ShippingAddress: order.ShippingAddress,
		OrderID:         orderID,
		Total:           order.Total,
	}
	for _, item := range order.Items {
		name := item.ProductID
		if product, err := uc.products.GetByID(item.ProductID); err == nil && product != nil {
			name = product.Name
		}
		doc.Lines = append(doc.Lines, InvoiceLine{
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Price.Mul(decimal.NewFromInt(item.Quantity)),
		})
	}
	return uc.pdfGen.GenerateInvoicePDF(ctx, doc)
}
