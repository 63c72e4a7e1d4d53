package repository

import "github.com/kellyos/kellyos-api/internal/domain/entity"

// PaymentRepository puerto de la tabla espejo de pagos.
// UpdateStatusByTransactionID es la vía de los webhooks: la pasarela solo
// conoce su transaction_id, no nuestro ID local.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	UpdateStatusByTransactionID(transactionID, status string) error
	List(limit, offset int) ([]*entity.Payment, error)
}
