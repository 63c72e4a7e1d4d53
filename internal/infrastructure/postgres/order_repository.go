package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo adaptador de persistencia para órdenes, líneas y facturas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera de la orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, total, status, payment_status, shipping_address, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.Total, order.Status, order.PaymentStatus,
		order.ShippingAddress, order.Notes, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem inserta una línea. Price es el snapshot del precio al crear la orden.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, total, status, payment_status, shipping_address, notes, created_by, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.PaymentStatus,
		&o.ShippingAddress, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItemsByOrderID lista las líneas de una orden.
func (r *OrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	query := `SELECT id, order_id, product_id, quantity, price FROM order_items WHERE order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List lista órdenes con el nombre del cliente (LEFT JOIN: la orden sobrevive
// aunque el cliente se borre).
func (r *OrderRepo) List(limit, offset int) ([]repository.OrderSummary, error) {
	query := `
		SELECT o.id, o.customer_id, o.total, o.status, o.payment_status, o.shipping_address,
		       o.notes, o.created_by, o.created_at, o.updated_at,
		       COALESCE(c.name, ''), COALESCE(c.email, '')
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []repository.OrderSummary
	for rows.Next() {
		var s repository.OrderSummary
		if err := rows.Scan(&s.Order.ID, &s.Order.CustomerID, &s.Order.Total, &s.Order.Status,
			&s.Order.PaymentStatus, &s.Order.ShippingAddress, &s.Order.Notes, &s.Order.CreatedBy,
			&s.Order.CreatedAt, &s.Order.UpdatedAt, &s.CustomerName, &s.CustomerEmail); err != nil {
			return nil, fmt.Errorf("scan order summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden y devuelve la fila actualizada.
func (r *OrderRepo) UpdateStatus(id, status string) (*entity.Order, error) {
	query := `
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2
		RETURNING id, customer_id, total, status, payment_status, shipping_address, notes, created_by, created_at, updated_at`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, status, id).Scan(
		&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.PaymentStatus,
		&o.ShippingAddress, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &o, nil
}

// UpdatePaymentStatus cambia el estado de pago espejo de la orden.
func (r *OrderRepo) UpdatePaymentStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET payment_status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update order payment status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateInvoice inserta la factura de una orden.
func (r *OrderRepo) CreateInvoice(id, orderID, number string, issuedAt time.Time) error {
	query := `INSERT INTO invoices (id, order_id, number, issued_at, created_at) VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(context.Background(), query, id, orderID, number, issuedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

const invoiceSelect = `
	SELECT i.id, i.order_id, i.number, i.issued_at, o.total, COALESCE(c.name, ''), i.created_at
	FROM invoices i
	JOIN orders o ON o.id = i.order_id
	LEFT JOIN customers c ON c.id = o.customer_id`

// ListInvoices lista facturas con total de la orden y nombre del cliente.
func (r *OrderRepo) ListInvoices(limit, offset int) ([]repository.InvoiceRow, error) {
	query := invoiceSelect + ` ORDER BY i.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []repository.InvoiceRow
	for rows.Next() {
		var inv repository.InvoiceRow
		if err := rows.Scan(&inv.ID, &inv.OrderID, &inv.Number, &inv.IssuedAt, &inv.Total,
			&inv.CustomerName, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetInvoiceByID obtiene una factura por ID.
func (r *OrderRepo) GetInvoiceByID(id string) (*repository.InvoiceRow, error) {
	query := invoiceSelect + ` WHERE i.id = $1`
	var inv repository.InvoiceRow
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.OrderID, &inv.Number, &inv.IssuedAt, &inv.Total, &inv.CustomerName, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}
