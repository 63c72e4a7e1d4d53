package entity

import "time"

// Operaciones de ajuste de stock.
const (
	StockOpAdd      = "add"      // quantity += n
	StockOpSubtract = "subtract" // quantity = max(quantity - n, 0)
	StockOpSet      = "set"      // quantity := n
)

// ValidStockOp indica si la operación es una de las tres soportadas.
func ValidStockOp(op string) bool {
	return op == StockOpAdd || op == StockOpSubtract || op == StockOpSet
}

// StockMovement es el registro de auditoría de un cambio de cantidad.
// Es append-only: una vez escrito no se modifica ni se borra.
// Quantity guarda el valor crudo de la petición, aunque un "subtract"
// haya quedado topado en cero sobre el producto.
type StockMovement struct {
	ID        string
	ProductID string
	Quantity  int64
	Operation string // add | subtract | set
	CreatedAt time.Time
}
