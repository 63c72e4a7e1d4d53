package postgres

import (
	"context"
	"fmt"

	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo adaptador del log de movimientos. Solo INSERT y SELECT:
// la tabla es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create escribe un movimiento de auditoría.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, quantity, operation, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.ProductID, m.Quantity, m.Operation, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity, operation, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Operation, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
