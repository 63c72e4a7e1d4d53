package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest asiento contable.
type CreateTransactionRequest struct {
	Type        string          `json:"type"` // income | expense
	Account     string          `json:"account"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	EntryDate   string          `json:"entry_date"` // YYYY-MM-DD; vacío = hoy
}

// TransactionResponse asiento registrado.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Account     string          `json:"account"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	EntryDate   time.Time       `json:"entry_date"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AccountBalanceDTO saldo por cuenta.
type AccountBalanceDTO struct {
	Account string          `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceSheetResponse balance general: activos (income) y pasivos (expense) por cuenta.
type BalanceSheetResponse struct {
	Assets      []AccountBalanceDTO `json:"assets"`
	Liabilities []AccountBalanceDTO `json:"liabilities"`
}

// IncomeStatementResponse estado de resultados.
type IncomeStatementResponse struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
