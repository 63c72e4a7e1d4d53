package plugins

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// Manager administra el ciclo de vida de los plugins: instalar (registrar en
// DB), habilitar (inicializar rutas), deshabilitar y desinstalar.
//
// Fiber no permite desmontar rutas en caliente: las rutas de un plugin se
// montan una sola vez por proceso. Deshabilitar llama a Destroy y apaga el
// flag enabled; las rutas ya montadas siguen vivas hasta reiniciar.
type Manager struct {
	repo   repository.PluginRepository
	router fiber.Router

	mu     sync.RWMutex
	loaded map[string]bool // inicializados en este proceso
}

// NewManager construye el manager. router es el grupo /api/plugins donde los
// plugins montan sus rutas.
func NewManager(repo repository.PluginRepository, router fiber.Router) *Manager {
	return &Manager{repo: repo, router: router, loaded: make(map[string]bool)}
}

// Bootstrap inicializa los plugins ya habilitados en DB. Se llama al
// arrancar, después de montar el router.
func (m *Manager) Bootstrap() error {
	enabled, err := m.repo.ListEnabled()
	if err != nil {
		return err
	}
	for _, record := range enabled {
		plugin, ok := Lookup(record.ID)
		if !ok {
			log.Warn().Str("plugin", record.ID).Msg("plugin habilitado en DB pero no compilado en el binario")
			continue
		}
		if err := m.initialize(plugin); err != nil {
			log.Error().Err(err).Str("plugin", record.ID).Msg("inicializar plugin falló")
			continue
		}
		log.Info().Str("plugin", record.ID).Msg("plugin inicializado")
	}
	return nil
}

func (m *Manager) initialize(p Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := p.Metadata().ID
	if m.loaded[id] {
		return nil
	}
	if err := p.Initialize(m.router); err != nil {
		return err
	}
	m.loaded[id] = true
	return nil
}

// isLoaded indica si el plugin fue inicializado en este proceso.
func (m *Manager) isLoaded(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded[id]
}

// Install registra un plugin compilado en la DB (deshabilitado). Un id que
// no existe en el registro estático es ErrNotFound.
func (m *Manager) Install(in dto.InstallPluginRequest) (*dto.PluginResponse, error) {
	plugin, ok := Lookup(in.ID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	meta := plugin.Metadata()
	now := time.Now()
	record := &entity.PluginRecord{
		ID:          meta.ID,
		Name:        meta.Name,
		Version:     meta.Version,
		Description: meta.Description,
		Author:      meta.Author,
		Enabled:     false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := m.repo.Upsert(record); err != nil {
		return nil, err
	}
	return m.toResponse(record), nil
}

// Enable habilita un plugin instalado y lo inicializa si hace falta.
func (m *Manager) Enable(id string) (*dto.PluginResponse, error) {
	record, err := m.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	plugin, ok := Lookup(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := m.initialize(plugin); err != nil {
		return nil, err
	}
	if err := m.repo.SetEnabled(id, true); err != nil {
		return nil, err
	}
	record.Enabled = true
	return m.toResponse(record), nil
}

// Disable deshabilita un plugin y llama a su Destroy.
func (m *Manager) Disable(id string) (*dto.PluginResponse, error) {
	record, err := m.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if err := m.repo.SetEnabled(id, false); err != nil {
		return nil, err
	}
	if plugin, ok := Lookup(id); ok && m.isLoaded(id) {
		if err := plugin.Destroy(); err != nil {
			log.Warn().Err(err).Str("plugin", id).Msg("destroy de plugin falló")
		}
		m.mu.Lock()
		delete(m.loaded, id)
		m.mu.Unlock()
	}
	record.Enabled = false
	return m.toResponse(record), nil
}

// Uninstall borra el estado del plugin de la DB (tras deshabilitarlo).
func (m *Manager) Uninstall(id string) error {
	if _, err := m.Disable(id); err != nil {
		return err
	}
	return m.repo.Delete(id)
}

// Get estado de un plugin instalado.
func (m *Manager) Get(id string) (*dto.PluginResponse, error) {
	record, err := m.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return m.toResponse(record), nil
}

// List estado de todos los plugins instalados.
func (m *Manager) List() ([]dto.PluginResponse, error) {
	records, err := m.repo.List()
	if err != nil {
		return nil, err
	}
	result := make([]dto.PluginResponse, 0, len(records))
	for _, record := range records {
		result = append(result, *m.toResponse(record))
	}
	return result, nil
}

func (m *Manager) toResponse(record *entity.PluginRecord) *dto.PluginResponse {
	return &dto.PluginResponse{
		ID:          record.ID,
		Name:        record.Name,
		Version:     record.Version,
		Description: record.Description,
		Author:      record.Author,
		Enabled:     record.Enabled,
		Loaded:      m.isLoaded(record.ID),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
