package inventory

import (
	"context"

	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación del producto y su
// movimiento de auditoría se persistan juntos o no se persista ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error) error
}
