package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo adaptador de persistencia para asientos contables.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador.
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un asiento.
func (r *LedgerRepo) Create(e *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, type, account, amount, description, entry_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Type, e.Account, e.Amount, e.Description, e.EntryDate, e.CreatedBy, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `SELECT id, type, account, amount, description, entry_date, created_by, created_at
		FROM ledger_entries WHERE id = $1`
	var e entity.LedgerEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Type, &e.Account, &e.Amount, &e.Description, &e.EntryDate, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return &e, nil
}

// List lista asientos, los de fecha más reciente primero.
func (r *LedgerRepo) List(limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT id, type, account, amount, description, entry_date, created_by, created_at
		FROM ledger_entries ORDER BY entry_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Account, &e.Amount, &e.Description,
			&e.EntryDate, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// BalancesByType agrupa saldos por cuenta para un tipo.
func (r *LedgerRepo) BalancesByType(entryType string) ([]repository.AccountBalance, error) {
	query := `SELECT account, COALESCE(SUM(amount), 0)
		FROM ledger_entries WHERE type = $1 GROUP BY account ORDER BY account`
	rows, err := r.q.Query(context.Background(), query, entryType)
	if err != nil {
		return nil, fmt.Errorf("balances by type: %w", err)
	}
	defer rows.Close()

	var list []repository.AccountBalance
	for rows.Next() {
		var b repository.AccountBalance
		if err := rows.Scan(&b.Account, &b.Balance); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// TotalsByType suma total de income y expense (estado de resultados).
func (r *LedgerRepo) TotalsByType() (income, expense decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM ledger_entries`
	err = r.q.QueryRow(context.Background(), query).Scan(&income, &expense)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("totals by type: %w", err)
	}
	return income, expense, nil
}
