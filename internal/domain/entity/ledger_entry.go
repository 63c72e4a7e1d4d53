package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento contable.
const (
	EntryIncome  = "income"
	EntryExpense = "expense"
)

// LedgerEntry asiento del módulo de contabilidad.
type LedgerEntry struct {
	ID          string
	Type        string // income | expense
	Account     string
	Amount      decimal.Decimal
	Description string
	EntryDate   time.Time
	CreatedBy   string // UserID
	CreatedAt   time.Time
}
