package repository

import "github.com/kellyos/kellyos-api/internal/domain/entity"

// StockMovementRepository puerto del log de movimientos de stock.
// Solo permite crear y leer: el log es append-only e inmutable.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
