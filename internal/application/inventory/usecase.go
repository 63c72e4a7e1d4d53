package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
	"github.com/kellyos/kellyos-api/internal/infrastructure/cache"
	"github.com/kellyos/kellyos-api/internal/infrastructure/events"
)

// UseCase motor de inventario: ajustes de stock transaccionales, historial
// de movimientos y alertas de stock bajo.
type UseCase struct {
	tx        TxRunner
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	cache     *cache.Cache
	producer  *events.Producer
}

// NewUseCase construye el caso de uso. cache y producer pueden ser nil.
func NewUseCase(tx TxRunner, products repository.ProductRepository, movements repository.StockMovementRepository, c *cache.Cache, p *events.Producer) *UseCase {
	return &UseCase{tx: tx, products: products, movements: movements, cache: c, producer: p}
}

// AdjustStock aplica un ajuste (add | subtract | set) y registra el movimiento
// en una sola transacción. El movimiento guarda la cantidad cruda pedida;
// "subtract" queda topado en cero sobre el producto, pero el log conserva lo
// pedido. Devuelve el producto con la cantidad resultante.
func (uc *UseCase) AdjustStock(ctx context.Context, productID string, in dto.UpdateStockRequest) (*dto.ProductResponse, error) {
	if !entity.ValidStockOp(in.Operation) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Product
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, movements repository.StockMovementRepository) error {
		var err error
		switch in.Operation {
		case entity.StockOpAdd:
			updated, err = products.AddStock(productID, in.Quantity)
		case entity.StockOpSubtract:
			updated, err = products.SubtractStockFloored(productID, in.Quantity)
		case entity.StockOpSet:
			updated, err = products.SetStock(productID, in.Quantity)
		}
		if err != nil {
			return err
		}
		return movements.Create(&entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Quantity:  in.Quantity,
			Operation: in.Operation,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: invalidar caché y publicar eventos (best-effort).
	uc.cache.InvalidateProduct(ctx, productID)
	uc.producer.Publish(ctx, events.Wrap(events.TypeStockAdjusted, events.StockAdjusted{
		ProductID:   productID,
		Operation:   in.Operation,
		Quantity:    in.Quantity,
		NewQuantity: updated.Quantity,
	}))
	if updated.Quantity <= updated.MinStockLevel {
		uc.producer.Publish(ctx, events.Wrap(events.TypeLowStock, events.LowStock{
			ProductID:     updated.ID,
			SKU:           updated.SKU,
			Quantity:      updated.Quantity,
			MinStockLevel: updated.MinStockLevel,
		}))
	}

	return toProductResponse(updated), nil
}

// ListMovements historial de movimientos de un producto, más recientes primero.
func (uc *UseCase) ListMovements(productID string, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	list, err := uc.movements.ListByProduct(productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		result = append(result, dto.StockMovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Quantity:  m.Quantity,
			Operation: m.Operation,
			CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}

// ListLowStock productos en o bajo su umbral de alerta.
func (uc *UseCase) ListLowStock() ([]dto.ProductResponse, error) {
	list, err := uc.products.ListLowStock()
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, *toProductResponse(p))
	}
	return result, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Cost:          p.Cost,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		Category:      p.Category,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
