package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/usecase"
)

// HRHandler maneja empleados y nómina (protegido, roles hr/admin).
type HRHandler struct {
	uc *usecase.HRUseCase
}

// NewHRHandler construye el handler.
func NewHRHandler(uc *usecase.HRUseCase) *HRHandler {
	return &HRHandler{uc: uc}
}

// CreateEmployee POST /api/hr/employees
func (h *HRHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateEmployee(in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// ListEmployees GET /api/hr/employees
func (h *HRHandler) ListEmployees(c *fiber.Ctx) error {
	out, err := h.uc.ListEmployees(pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// GetEmployee GET /api/hr/employees/:id
func (h *HRHandler) GetEmployee(c *fiber.Ctx) error {
	out, err := h.uc.GetEmployee(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// UpdateEmployee PUT /api/hr/employees/:id
func (h *HRHandler) UpdateEmployee(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateEmployee(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// DeleteEmployee DELETE /api/hr/employees/:id
func (h *HRHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.uc.DeleteEmployee(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.Map{"deleted": true})
}

// CreatePayroll POST /api/hr/payroll
func (h *HRHandler) CreatePayroll(c *fiber.Ctx) error {
	var in dto.CreatePayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreatePayroll(in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// ListPayroll GET /api/hr/payroll
func (h *HRHandler) ListPayroll(c *fiber.Ctx) error {
	out, err := h.uc.ListPayroll(pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}
