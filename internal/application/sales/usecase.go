package sales

import (
	"errors"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
	"github.com/kellyos/kellyos-api/internal/infrastructure/events"
)

// Estados válidos de una orden para transiciones manuales.
var validOrderStatus = map[string]bool{
	entity.OrderStatusPending:   true,
	entity.OrderStatusPaid:      true,
	entity.OrderStatusShipped:   true,
	entity.OrderStatusDelivered: true,
	entity.OrderStatusCancelled: true,
}

// UseCase casos de uso del módulo de ventas: órdenes, estados y facturas.
type UseCase struct {
	tx           TxRunner
	orders       repository.OrderRepository
	customers    repository.CustomerRepository
	products     repository.ProductRepository
	pdfGen       InvoicePDFGenerator
	producer     *events.Producer
	businessName string
}

// NewUseCase construye el caso de uso. producer puede ser nil.
func NewUseCase(tx TxRunner, orders repository.OrderRepository, customers repository.CustomerRepository, products repository.ProductRepository, pdfGen InvoicePDFGenerator, producer *events.Producer, businessName string) *UseCase {
	return &UseCase{
		tx:           tx,
		orders:       orders,
		customers:    customers,
		products:     products,
		pdfGen:       pdfGen,
		producer:     producer,
		businessName: businessName,
	}
}

// GetOrder devuelve la orden con sus líneas y el nombre del cliente.
func (uc *UseCase) GetOrder(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orders.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(order)
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	if customer, err := uc.customers.GetByID(order.CustomerID); err == nil && customer != nil {
		resp.CustomerName = customer.Name
		resp.CustomerEmail = customer.Email
	}
	return resp, nil
}

// ListOrders lista órdenes con paginación.
func (uc *UseCase) ListOrders(page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.orders.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(list))
	for _, s := range list {
		resp := toOrderResponse(&s.Order)
		resp.CustomerName = s.CustomerName
		resp.CustomerEmail = s.CustomerEmail
		result = append(result, *resp)
	}
	return result, nil
}

// UpdateOrderStatus cambia el estado de la orden. La transición a "paid"
// emite además la factura de la orden (idempotente: una segunda transición
// con factura existente no crea otra).
func (uc *UseCase) UpdateOrderStatus(id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !validOrderStatus[in.Status] {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.UpdateStatus(id, in.Status)
	if err != nil {
		return nil, err
	}
	if in.Status == entity.OrderStatusPaid {
		if err := uc.issueInvoice(order); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		Total:           o.Total,
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		CreatedBy:       o.CreatedBy,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
