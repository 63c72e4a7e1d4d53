package repository

import "github.com/kellyos/kellyos-api/internal/domain/entity"

// EmployeeRepository puerto de persistencia para empleados y nómina.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Employee, error)

	CreatePayroll(record *entity.PayrollRecord) error
	ListPayroll(limit, offset int) ([]*entity.PayrollRecord, error)
}
