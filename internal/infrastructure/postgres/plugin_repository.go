package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

var _ repository.PluginRepository = (*PluginRepo)(nil)

// PluginRepo adaptador de persistencia del estado de plugins.
type PluginRepo struct {
	q Querier
}

// NewPluginRepository construye el adaptador.
func NewPluginRepository(q Querier) *PluginRepo {
	return &PluginRepo{q: q}
}

// Upsert inserta o actualiza los metadatos de un plugin (instalación idempotente).
func (r *PluginRepo) Upsert(p *entity.PluginRecord) error {
	query := `
		INSERT INTO plugins (id, name, version, description, author, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			version = EXCLUDED.version,
			description = EXCLUDED.description,
			author = EXCLUDED.author,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Version, p.Description, p.Author, p.Enabled, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert plugin: %w", err)
	}
	return nil
}

const pluginColumns = `id, name, version, description, author, enabled, created_at, updated_at`

// GetByID obtiene el estado de un plugin.
func (r *PluginRepo) GetByID(id string) (*entity.PluginRecord, error) {
	query := `SELECT ` + pluginColumns + ` FROM plugins WHERE id = $1`
	var p entity.PluginRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Version, &p.Description, &p.Author, &p.Enabled, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plugin: %w", err)
	}
	return &p, nil
}

// List lista todos los plugins instalados.
func (r *PluginRepo) List() ([]*entity.PluginRecord, error) {
	return r.list(`SELECT ` + pluginColumns + ` FROM plugins ORDER BY name`)
}

// ListEnabled lista solo los plugins habilitados (arranque del manager).
func (r *PluginRepo) ListEnabled() ([]*entity.PluginRecord, error) {
	return r.list(`SELECT ` + pluginColumns + ` FROM plugins WHERE enabled ORDER BY name`)
}

func (r *PluginRepo) list(query string) ([]*entity.PluginRecord, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list plugins: %w", err)
	}
	defer rows.Close()

	var list []*entity.PluginRecord
	for rows.Next() {
		var p entity.PluginRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Version, &p.Description, &p.Author,
			&p.Enabled, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plugin: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SetEnabled cambia el flag de habilitado.
func (r *PluginRepo) SetEnabled(id string, enabled bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE plugins SET enabled = $1, updated_at = now() WHERE id = $2`, enabled, id)
	if err != nil {
		return fmt.Errorf("set plugin enabled: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete desinstala un plugin (borra su fila de estado).
func (r *PluginRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM plugins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plugin: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
