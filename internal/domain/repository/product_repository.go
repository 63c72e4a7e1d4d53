package repository

import "github.com/kellyos/kellyos-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// Las mutaciones de cantidad se expresan como operaciones SQL atómicas
// (quantity + n, GREATEST(quantity - n, 0), := n) para que la serialización
// de escrituras concurrentes quede en manos del aislamiento de la DB.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)

	// AddStock aplica quantity = quantity + qty y devuelve el producto actualizado.
	AddStock(id string, qty int64) (*entity.Product, error)
	// SubtractStockFloored aplica quantity = GREATEST(quantity - qty, 0).
	SubtractStockFloored(id string, qty int64) (*entity.Product, error)
	// SetStock aplica quantity = qty.
	SetStock(id string, qty int64) (*entity.Product, error)
	// DecrementStock aplica quantity = quantity - qty SIN tope en cero.
	// Es la ruta de débito de creación de órdenes (asimetría documentada).
	DecrementStock(id string, qty int64) error
}
