package repository

import "github.com/kellyos/kellyos-api/internal/domain/entity"

// PluginRepository puerto de persistencia del estado de plugins.
type PluginRepository interface {
	Upsert(record *entity.PluginRecord) error
	GetByID(id string) (*entity.PluginRecord, error)
	List() ([]*entity.PluginRecord, error)
	ListEnabled() ([]*entity.PluginRecord, error)
	SetEnabled(id string, enabled bool) error
	Delete(id string) error
}
