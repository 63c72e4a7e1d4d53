package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kellyos/kellyos-api/internal/application/inventory"
	"github.com/kellyos/kellyos-api/internal/application/sales"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and sales.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Toma una conexión del pool por operación y la libera en toda salida
// (commit, error o rollback); el defer Rollback es inocuo tras Commit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es la ruta del ajuste de stock: producto + log de movimientos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	products := NewProductRepository(tx)
	movements := NewStockMovementRepository(tx)

	if err := fn(products, movements); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSales inicia una transacción con los repos que necesita la creación de
// órdenes: cabecera + líneas + débito de stock, todo o nada.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	orders repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	products := NewProductRepository(tx)
	movements := NewStockMovementRepository(tx)
	orders := NewOrderRepository(tx)

	if err := fn(products, movements, orders); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
