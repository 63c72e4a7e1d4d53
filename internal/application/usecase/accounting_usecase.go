package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// AccountingUseCase casos de uso de contabilidad: asientos y reportes.
type AccountingUseCase struct {
	repo repository.LedgerRepository
}

// NewAccountingUseCase construye el caso de uso.
func NewAccountingUseCase(repo repository.LedgerRepository) *AccountingUseCase {
	return &AccountingUseCase{repo: repo}
}

// CreateTransaction registra un asiento. entry_date vacío = hoy.
func (uc *AccountingUseCase) CreateTransaction(userID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.EntryIncome && in.Type != entity.EntryExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Account == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	entryDate := time.Now()
	if in.EntryDate != "" {
		parsed, err := time.Parse("2006-01-02", in.EntryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		entryDate = parsed
	}
	entry := &entity.LedgerEntry{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Account:     in.Account,
		Amount:      in.Amount,
		Description: in.Description,
		EntryDate:   entryDate,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toTransactionResponse(entry), nil
}

// GetTransaction obtiene un asiento.
func (uc *AccountingUseCase) GetTransaction(id string) (*dto.TransactionResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(entry), nil
}

// ListTransactions lista asientos con paginación.
func (uc *AccountingUseCase) ListTransactions(page dto.PageRequest) ([]dto.TransactionResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TransactionResponse, 0, len(list))
	for _, e := range list {
		result = append(result, *toTransactionResponse(e))
	}
	return result, nil
}

// BalanceSheet balance por cuenta: ingresos como activos, egresos como pasivos.
func (uc *AccountingUseCase) BalanceSheet() (*dto.BalanceSheetResponse, error) {
	income, err := uc.repo.BalancesByType(entity.EntryIncome)
	if err != nil {
		return nil, err
	}
	expense, err := uc.repo.BalancesByType(entity.EntryExpense)
	if err != nil {
		return nil, err
	}
	resp := &dto.BalanceSheetResponse{
		Assets:      make([]dto.AccountBalanceDTO, 0, len(income)),
		Liabilities: make([]dto.AccountBalanceDTO, 0, len(expense)),
	}
	for _, b := range income {
		resp.Assets = append(resp.Assets, dto.AccountBalanceDTO{Account: b.Account, Balance: b.Balance})
	}
	for _, b := range expense {
		resp.Liabilities = append(resp.Liabilities, dto.AccountBalanceDTO{Account: b.Account, Balance: b.Balance})
	}
	return resp, nil
}

// IncomeStatement estado de resultados: ingresos, egresos y neto.
func (uc *AccountingUseCase) IncomeStatement() (*dto.IncomeStatementResponse, error) {
	income, expense, err := uc.repo.TotalsByType()
	if err != nil {
		return nil, err
	}
	return &dto.IncomeStatementResponse{
		Revenue:  income,
		Expenses: expense,
		Net:      income.Sub(expense),
	}, nil
}

func toTransactionResponse(e *entity.LedgerEntry) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          e.ID,
		Type:        e.Type,
		Account:     e.Account,
		Amount:      e.Amount,
		Description: e.Description,
		EntryDate:   e.EntryDate,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}
