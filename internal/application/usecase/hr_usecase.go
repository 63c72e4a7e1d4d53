package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// HRUseCase casos de uso de RRHH: empleados y nómina.
type HRUseCase struct {
	repo repository.EmployeeRepository
}

// NewHRUseCase construye el caso de uso.
func NewHRUseCase(repo repository.EmployeeRepository) *HRUseCase {
	return &HRUseCase{repo: repo}
}

// CreateEmployee da de alta un empleado. hired_at vacío = hoy.
func (uc *HRUseCase) CreateEmployee(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Salary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	hiredAt := time.Now()
	if in.HiredAt != "" {
		parsed, err := time.Parse("2006-01-02", in.HiredAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		hiredAt = parsed
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Email:      in.Email,
		Position:   in.Position,
		Department: in.Department,
		Salary:     in.Salary,
		HiredAt:    hiredAt,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetEmployee obtiene un empleado.
func (uc *HRUseCase) GetEmployee(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// UpdateEmployee actualiza un empleado (parcial).
func (uc *HRUseCase) UpdateEmployee(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.Department != nil {
		employee.Department = *in.Department
	}
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		employee.Salary = *in.Salary
	}
	if in.Status != nil {
		if *in.Status != "active" && *in.Status != "inactive" {
			return nil, domain.ErrInvalidInput
		}
		employee.Status = *in.Status
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// DeleteEmployee elimina un empleado.
func (uc *HRUseCase) DeleteEmployee(id string) error {
	return uc.repo.Delete(id)
}

// ListEmployees lista empleados con paginación.
func (uc *HRUseCase) ListEmployees(page dto.PageRequest) ([]dto.EmployeeResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		result = append(result, *toEmployeeResponse(e))
	}
	return result, nil
}

// CreatePayroll liquida la nómina de un período: net = gross - deductions.
func (uc *HRUseCase) CreatePayroll(in dto.CreatePayrollRequest) (*dto.PayrollResponse, error) {
	if in.EmployeeID == "" || in.Period == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Gross.IsNegative() || in.Deductions.IsNegative() || in.Deductions.GreaterThan(in.Gross) {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	record := &entity.PayrollRecord{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		Period:     in.Period,
		Gross:      in.Gross,
		Deductions: in.Deductions,
		Net:        in.Gross.Sub(in.Deductions),
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.CreatePayroll(record); err != nil {
		return nil, err
	}
	return toPayrollResponse(record), nil
}

// ListPayroll lista liquidaciones, más recientes primero.
func (uc *HRUseCase) ListPayroll(page dto.PageRequest) ([]dto.PayrollResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListPayroll(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PayrollResponse, 0, len(list))
	for _, p := range list {
		result = append(result, *toPayrollResponse(p))
	}
	return result, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
		HiredAt:    e.HiredAt,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toPayrollResponse(p *entity.PayrollRecord) *dto.PayrollResponse {
	return &dto.PayrollResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Period:     p.Period,
		Gross:      p.Gross,
		Deductions: p.Deductions,
		Net:        p.Net,
		CreatedAt:  p.CreatedAt,
	}
}
