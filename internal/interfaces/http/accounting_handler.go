package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/usecase"
)

// AccountingHandler maneja asientos y reportes contables (protegido,
// roles accountant/admin).
type AccountingHandler struct {
	uc *usecase.AccountingUseCase
}

// NewAccountingHandler construye el handler.
func NewAccountingHandler(uc *usecase.AccountingUseCase) *AccountingHandler {
	return &AccountingHandler{uc: uc}
}

// CreateTransaction POST /api/accounting/transactions
func (h *AccountingHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateTransaction(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, out)
}

// ListTransactions GET /api/accounting/transactions
func (h *AccountingHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.uc.ListTransactions(pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// GetTransaction GET /api/accounting/transactions/:id
func (h *AccountingHandler) GetTransaction(c *fiber.Ctx) error {
	out, err := h.uc.GetTransaction(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// BalanceSheet GET /api/accounting/balance-sheet
func (h *AccountingHandler) BalanceSheet(c *fiber.Ctx) error {
	out, err := h.uc.BalanceSheet()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}

// IncomeStatement GET /api/accounting/income-statement
func (h *AccountingHandler) IncomeStatement(c *fiber.Ctx) error {
	out, err := h.uc.IncomeStatement()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, out)
}
