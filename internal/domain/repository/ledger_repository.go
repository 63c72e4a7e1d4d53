package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kellyos/kellyos-api/internal/domain/entity"
)

// AccountBalance saldo agregado por cuenta (reportes contables).
type AccountBalance struct {
	Account string
	Balance decimal.Decimal
}

// LedgerRepository puerto de persistencia para asientos contables.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	List(limit, offset int) ([]*entity.LedgerEntry, error)

	// BalancesByType agrupa saldos por cuenta para un tipo (income|expense).
	BalancesByType(entryType string) ([]AccountBalance, error)
	// TotalsByType devuelve la suma total por tipo (estado de resultados).
	TotalsByType() (income, expense decimal.Decimal, err error)
}
