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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo adaptador de persistencia para clientes e interacciones CRM.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT id, name, email, phone, address, created_at, updated_at FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza los datos de un cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente. Sus órdenes sobreviven (FK con SET NULL).
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT id, name, email, phone, address, created_at, updated_at
		FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CreateInteraction registra un contacto con el cliente.
func (r *CustomerRepo) CreateInteraction(i *entity.Interaction) error {
	query := `
		INSERT INTO customer_interactions (id, customer_id, type, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.CustomerID, i.Type, i.Notes, i.CreatedBy, i.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// ListInteractions lista el historial de interacciones de un cliente.
func (r *CustomerRepo) ListInteractions(customerID string, limit, offset int) ([]*entity.Interaction, error) {
	query := `SELECT id, customer_id, type, notes, created_by, created_at
		FROM customer_interactions WHERE customer_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Interaction
	for rows.Next() {
		var i entity.Interaction
		if err := rows.Scan(&i.ID, &i.CustomerID, &i.Type, &i.Notes, &i.CreatedBy, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
