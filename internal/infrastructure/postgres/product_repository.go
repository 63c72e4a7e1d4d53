package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, price, cost, quantity, min_stock_level, category, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, price, cost, quantity, min_stock_level, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		product.Price, product.Cost, product.Quantity, product.MinStockLevel,
		product.Category, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Cost,
		&p.Quantity, &p.MinStockLevel, &p.Category, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// Update actualiza un producto existente. Quantity no se toca aquí:
// solo cambia vía ajustes de stock u órdenes (rutas transaccionales).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, name = $3, description = $4, price = $5, cost = $6, min_stock_level = $7, category = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description, product.Price,
		product.Cost, product.MinStockLevel, product.Category, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListLowStock lista productos con quantity <= min_stock_level, los más críticos primero.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity <= min_stock_level ORDER BY quantity ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *ProductRepo) scanList(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Cost,
			&p.Quantity, &p.MinStockLevel, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// applyStock ejecuta la mutación de cantidad y devuelve la fila actualizada.
// ErrNotFound si el id no existe (el caller hace rollback).
func (r *ProductRepo) applyStock(query, id string, qty int64) (*entity.Product, error) {
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, qty, id))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// AddStock aplica quantity = quantity + qty.
func (r *ProductRepo) AddStock(id string, qty int64) (*entity.Product, error) {
	query := `UPDATE products SET quantity = quantity + $1, updated_at = now() WHERE id = $2 RETURNING ` + productColumns
	return r.applyStock(query, id, qty)
}

// SubtractStockFloored aplica quantity = GREATEST(quantity - qty, 0): nunca queda negativo.
func (r *ProductRepo) SubtractStockFloored(id string, qty int64) (*entity.Product, error) {
	query := `UPDATE products SET quantity = GREATEST(quantity - $1, 0), updated_at = now() WHERE id = $2 RETURNING ` + productColumns
	return r.applyStock(query, id, qty)
}

// SetStock aplica quantity = qty.
func (r *ProductRepo) SetStock(id string, qty int64) (*entity.Product, error) {
	query := `UPDATE products SET quantity = $1, updated_at = now() WHERE id = $2 RETURNING ` + productColumns
	return r.applyStock(query, id, qty)
}

// DecrementStock aplica quantity = quantity - qty sin tope en cero.
// El decremento aditivo es seguro bajo el aislamiento por defecto de la DB,
// aunque el conteo literal sí puede quedar negativo en esta ruta.
func (r *ProductRepo) DecrementStock(id string, qty int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity - $1, updated_at = now() WHERE id = $2`, qty, id)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
