package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HiredAt    string          `json:"hired_at"` // YYYY-MM-DD; vacío = hoy
}

// UpdateEmployeeRequest actualización parcial de empleado.
type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Salary     *decimal.Decimal `json:"salary"`
	Status     *string          `json:"status"`
}

// EmployeeResponse representación pública del empleado.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email,omitempty"`
	Position   string          `json:"position,omitempty"`
	Department string          `json:"department,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	HiredAt    time.Time       `json:"hired_at"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CreatePayrollRequest liquidación de nómina de un período.
type CreatePayrollRequest struct {
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"` // ej. "2026-08"
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
}

// PayrollResponse registro de nómina.
type PayrollResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
	CreatedAt  time.Time       `json:"created_at"`
}
