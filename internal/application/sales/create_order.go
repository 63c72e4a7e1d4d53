package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
	"github.com/kellyos/kellyos-api/internal/infrastructure/events"
)

// CreateOrder crea una orden de venta en una sola transacción:
//
//  1. Por cada línea se lee el precio vigente del producto; un producto
//     inexistente aborta la orden completa.
//  2. total = Σ(precio_vigente × cantidad).
//  3. Se inserta la cabecera en estado "pending" y las líneas con el precio
//     snapshot.
//  4. Se debita la cantidad de cada producto. Esta ruta NO topa en cero:
//     una venta puede dejar el conteo negativo (sobreventa visible), a
//     diferencia del ajuste "subtract" del inventario.
//
// El evento OrderCreated se publica después del commit.
func (uc *UseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	orderID := uuid.New().String()
	now := time.Now()

	err = uc.tx.RunSales(ctx, func(products repository.ProductRepository, _ repository.StockMovementRepository, orders repository.OrderRepository) error {
		total := decimal.Zero
		lines := make([]*entity.OrderItem, 0, len(in.Items))
		for _, item := range in.Items {
			product, err := products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
			lines = append(lines, &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		if err := orders.Create(&entity.Order{
			ID:              orderID,
			CustomerID:      in.CustomerID,
			Total:           total,
			Status:          entity.OrderStatusPending,
			PaymentStatus:   entity.PaymentStatusUnpaid,
			ShippingAddress: in.ShippingAddress,
			Notes:           in.Notes,
			CreatedBy:       userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}); err != nil {
			return err
		}
		for _, line := range lines {
			if err := orders.CreateItem(line); err != nil {
				return err
			}
			if err := products.DecrementStock(line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Releer la orden completa ya commiteada.
	resp, err := uc.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	uc.producer.Publish(ctx, events.Wrap(events.TypeOrderCreated, events.OrderCreated{
		OrderID:    orderID,
		CustomerID: in.CustomerID,
		Total:      resp.Total.String(),
		Items:      len(resp.Items),
	}))

	return resp, nil
}
