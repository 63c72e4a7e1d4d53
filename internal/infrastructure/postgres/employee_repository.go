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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo adaptador de persistencia para empleados y nómina.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado nuevo.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, position, department, salary, hired_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Email, e.Position, e.Department, e.Salary, e.HiredAt, e.Status, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT id, name, email, position, department, salary, hired_at, status, created_at, updated_at
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.Salary,
		&e.HiredAt, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza los datos de un empleado.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, email = $3, position = $4, department = $5, salary = $6, hired_at = $7, status = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Email, e.Position, e.Department, e.Salary, e.HiredAt, e.Status, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado.
func (r *EmployeeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT id, name, email, position, department, salary, hired_at, status, created_at, updated_at
		FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Department,
			&e.Salary, &e.HiredAt, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CreatePayroll registra una liquidación de nómina.
func (r *EmployeeRepo) CreatePayroll(p *entity.PayrollRecord) error {
	query := `
		INSERT INTO payroll_records (id, employee_id, period, gross, deductions, net, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.EmployeeID, p.Period, p.Gross, p.Deductions, p.Net, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payroll record: %w", err)
	}
	return nil
}

// ListPayroll lista liquidaciones, más recientes primero.
func (r *EmployeeRepo) ListPayroll(limit, offset int) ([]*entity.PayrollRecord, error) {
	query := `SELECT id, employee_id, period, gross, deductions, net, created_at
		FROM payroll_records ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payroll records: %w", err)
	}
	defer rows.Close()

	var list []*entity.PayrollRecord
	for rows.Next() {
		var p entity.PayrollRecord
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Period, &p.Gross, &p.Deductions, &p.Net, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payroll record: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
