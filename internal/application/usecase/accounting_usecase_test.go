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
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del ledger
// ──────────────────────────────────────────────────────────────────────────────

type memLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (r *memLedgerRepo) Create(e *entity.LedgerEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *memLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memLedgerRepo) List(int, int) ([]*entity.LedgerEntry, error) { return r.entries, nil }

func (r *memLedgerRepo) BalancesByType(entryType string) ([]repository.AccountBalance, error) {
	byAccount := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range r.entries {
		if e.Type != entryType {
			continue
		}
		if _, seen := byAccount[e.Account]; !seen {
			order = append(order, e.Account)
		}
		byAccount[e.Account] = byAccount[e.Account].Add(e.Amount)
	}
	result := make([]repository.AccountBalance, 0, len(order))
	for _, account := range order {
		result = append(result, repository.AccountBalance{Account: account, Balance: byAccount[account]})
	}
	return result, nil
}

func (r *memLedgerRepo) TotalsByType() (decimal.Decimal, decimal.Decimal, error) {
	income, expense := decimal.Zero, decimal.Zero
	for _, e := range r.entries {
		switch e.Type {
		case entity.EntryIncome:
			income = income.Add(e.Amount)
		case entity.EntryExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return income, expense, nil
}

func seedLedger(t *testing.T, uc *usecase.AccountingUseCase) {
	t.Helper()
	for _, in := range []dto.CreateTransactionRequest{
		{Type: entity.EntryIncome, Account: "ventas", Amount: decimal.NewFromInt(5000)},
		{Type: entity.EntryIncome, Account: "ventas", Amount: decimal.NewFromInt(1500)},
		{Type: entity.EntryIncome, Account: "servicios", Amount: decimal.NewFromInt(800)},
		{Type: entity.EntryExpense, Account: "alquiler", Amount: decimal.NewFromInt(2000)},
		{Type: entity.EntryExpense, Account: "insumos", Amount: decimal.NewFromInt(300)},
	} {
		_, err := uc.CreateTransaction("user-1", in)
		require.NoError(t, err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests asientos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTransaction_TipoDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewAccountingUseCase(&memLedgerRepo{})

	_, err := uc.CreateTransaction("user-1", dto.CreateTransactionRequest{
		Type:    "transfer",
		Account: "caja",
		Amount:  decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateTransaction_MontoNoPositivo_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewAccountingUseCase(&memLedgerRepo{})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		_, err := uc.CreateTransaction("user-1", dto.CreateTransactionRequest{
			Type:    entity.EntryIncome,
			Account: "caja",
			Amount:  amount,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateTransaction_FechaExplicita_SeRespeta(t *testing.T) {
	uc := usecase.NewAccountingUseCase(&memLedgerRepo{})

	resp, err := uc.CreateTransaction("user-1", dto.CreateTransactionRequest{
		Type:      entity.EntryExpense,
		Account:   "alquiler",
		Amount:    decimal.NewFromInt(2000),
		EntryDate: "2026-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-31", resp.EntryDate.Format("2006-01-02"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestBalanceSheet_AgrupaPorCuenta(t *testing.T) {
	uc := usecase.NewAccountingUseCase(&memLedgerRepo{})
	seedLedger(t, uc)

	resp, err := uc.BalanceSheet()
	require.NoError(t, err)

	require.Len(t, resp.Assets, 2, "income agrupado por cuenta: ventas y servicios")
	assert.Equal(t, "ventas", resp.Assets[0].Account)
	assert.True(t, decimal.NewFromInt(6500).Equal(resp.Assets[0].Balance),
		"ventas = 5000 + 1500")
	require.Len(t, resp.Liabilities, 2)
}

func TestIncomeStatement_CalculaElNeto(t *testing.T) {
	uc := usecase.NewAccountingUseCase(&memLedgerRepo{})
	seedLedger(t, uc)

	resp, err := uc.IncomeStatement()
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(7300).Equal(resp.Revenue))
	assert.True(t, decimal.NewFromInt(2300).Equal(resp.Expenses))
	assert.True(t, decimal.NewFromInt(5000).Equal(resp.Net), "net = ingresos - egresos")
}
