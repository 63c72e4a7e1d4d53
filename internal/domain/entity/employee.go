package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee empleado del módulo de RRHH.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Position   string
	Department string
	Salary     decimal.Decimal
	HiredAt    time.Time
	Status     string // active | inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PayrollRecord liquidación de nómina de un período para un empleado.
type PayrollRecord struct {
	ID         string
	EmployeeID string
	Period     string // ej. "2026-08"
	Gross      decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
	CreatedAt  time.Time
}
