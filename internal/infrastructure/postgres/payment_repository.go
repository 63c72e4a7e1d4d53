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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo adaptador de la tabla espejo de pagos.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create inserta la fila local del pago (estado inicial "pending").
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, gateway, transaction_id, amount, currency, status, order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Gateway, p.TransactionID, p.Amount, p.Currency, p.Status, p.OrderID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID local.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT id, gateway, transaction_id, amount, currency, status, COALESCE(order_id, ''), created_at, updated_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Gateway, &p.TransactionID, &p.Amount, &p.Currency, &p.Status,
		&p.OrderID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// UpdateStatusByTransactionID actualiza el estado por el ID de la pasarela.
// Es la vía de los webhooks; un transaction_id desconocido es ErrNotFound.
func (r *PaymentRepo) UpdateStatusByTransactionID(transactionID, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE payments SET status = $1, updated_at = now() WHERE transaction_id = $2`, status, transactionID)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista pagos con paginación, más recientes primero.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT id, gateway, transaction_id, amount, currency, status, COALESCE(order_id, ''), created_at, updated_at
		FROM payments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.Gateway, &p.TransactionID, &p.Amount, &p.Currency,
			&p.Status, &p.OrderID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
