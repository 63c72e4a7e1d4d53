package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/usecase"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de empleados
// ──────────────────────────────────────────────────────────────────────────────

type memEmployeeRepo struct {
	employees map[string]*entity.Employee
	payroll   []*entity.PayrollRecord
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (r *memEmployeeRepo) Create(e *entity.Employee) error { r.employees[e.ID] = e; return nil }

func (r *memEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.employees[id], nil
}

func (r *memEmployeeRepo) Update(e *entity.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.employees[e.ID] = e
	return nil
}

func (r *memEmployeeRepo) Delete(id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *memEmployeeRepo) List(int, int) ([]*entity.Employee, error) {
	result := make([]*entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		result = append(result, e)
	}
	return result, nil
}

func (r *memEmployeeRepo) CreatePayroll(p *entity.PayrollRecord) error {
	r.payroll = append(r.payroll, p)
	return nil
}

func (r *memEmployeeRepo) ListPayroll(int, int) ([]*entity.PayrollRecord, error) {
	return r.payroll, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEmployee_ParseaFechaYArrancaActivo(t *testing.T) {
	uc := usecase.NewHRUseCase(newMemEmployeeRepo())

	resp, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Name:    "Ana Gómez",
		Salary:  decimal.NewFromInt(2500),
		HiredAt: "2024-03-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "active", resp.Status, "todo empleado nuevo arranca activo")
	assert.Equal(t, "2024-03-15", resp.HiredAt.Format("2006-01-02"))
}

func TestCreateEmployee_FechaInvalida_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewHRUseCase(newMemEmployeeRepo())

	_, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Name:    "Ana Gómez",
		Salary:  decimal.NewFromInt(2500),
		HiredAt: "15/03/2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateEmployee_EstadoDesconocido_RetornaErrInvalidInput(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := usecase.NewHRUseCase(repo)
	created, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Name:   "Ana Gómez",
		Salary: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)

	bad := "vacaciones"
	_, err = uc.UpdateEmployee(created.ID, dto.UpdateEmployeeRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"solo active|inactive son estados válidos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests nómina
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePayroll_CalculaElNeto(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := usecase.NewHRUseCase(repo)
	created, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Name:   "Ana Gómez",
		Salary: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)

	resp, err := uc.CreatePayroll(dto.CreatePayrollRequest{
		EmployeeID: created.ID,
		Period:     "2026-08",
		Gross:      decimal.NewFromInt(2500),
		Deductions: decimal.NewFromInt(400),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(2100).Equal(resp.Net), "net = gross - deductions")
	require.Len(t, repo.payroll, 1)
}

func TestCreatePayroll_DeduccionesMayoresQueElBruto_RetornaErrInvalidInput(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := usecase.NewHRUseCase(repo)
	created, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Name:   "Ana Gómez",
		Salary: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)

	_, err = uc.CreatePayroll(dto.CreatePayrollRequest{
		EmployeeID: created.ID,
		Period:     "2026-08",
		Gross:      decimal.NewFromInt(1000),
		Deductions: decimal.NewFromInt(1500),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.payroll)
}

func TestCreatePayroll_EmpleadoInexistente_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewHRUseCase(newMemEmployeeRepo())

	_, err := uc.CreatePayroll(dto.CreatePayrollRequest{
		EmployeeID: "nadie",
		Period:     "2026-08",
		Gross:      decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
