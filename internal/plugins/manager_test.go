package plugins_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/plugins"
)

func installReq(id string) dto.InstallPluginRequest {
	return dto.InstallPluginRequest{ID: id}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de plugins
// ──────────────────────────────────────────────────────────────────────────────

type memPluginRepo struct {
	records map[string]*entity.PluginRecord
}

func newMemPluginRepo() *memPluginRepo {
	return &memPluginRepo{records: make(map[string]*entity.PluginRecord)}
}

func (r *memPluginRepo) Upsert(record *entity.PluginRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *memPluginRepo) GetByID(id string) (*entity.PluginRecord, error) {
	return r.records[id], nil
}

func (r *memPluginRepo) List() ([]*entity.PluginRecord, error) {
	result := make([]*entity.PluginRecord, 0, len(r.records))
	for _, rec := range r.records {
		result = append(result, rec)
	}
	return result, nil
}

func (r *memPluginRepo) ListEnabled() ([]*entity.PluginRecord, error) {
	var result []*entity.PluginRecord
	for _, rec := range r.records {
		if rec.Enabled {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *memPluginRepo) SetEnabled(id string, enabled bool) error {
	rec, ok := r.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Enabled = enabled
	return nil
}

func (r *memPluginRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

func buildManager() (*plugins.Manager, *memPluginRepo, *fiber.App) {
	app := fiber.New()
	repo := newMemPluginRepo()
	group := app.Group("/api/plugins")
	return plugins.NewManager(repo, group), repo, app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_ConoceElSamplePlugin(t *testing.T) {
	assert.Contains(t, plugins.Known(), "sample-plugin",
		"el registro estático debe incluir el plugin de ejemplo compilado")
}

func TestInstall_PluginDesconocido_RetornaErrNotFound(t *testing.T) {
	m, _, _ := buildManager()

	_, err := m.Install(installReq("no-compilado"))
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"solo se puede instalar un plugin registrado en compilación")
}

func TestInstall_QuedaDeshabilitadoYNoCargado(t *testing.T) {
	m, repo, _ := buildManager()

	resp, err := m.Install(installReq("sample-plugin"))
	require.NoError(t, err)

	assert.False(t, resp.Enabled, "instalar no habilita el plugin")
	assert.False(t, resp.Loaded, "instalar no inicializa rutas")
	assert.Equal(t, "Sample Plugin", resp.Name, "los metadatos salen del binario, no del request")
	require.NotNil(t, repo.records["sample-plugin"])
}

func TestEnable_InicializaYMontaLasRutas(t *testing.T) {
	m, _, app := buildManager()
	_, err := m.Install(installReq("sample-plugin"))
	require.NoError(t, err)

	resp, err := m.Enable("sample-plugin")
	require.NoError(t, err)
	assert.True(t, resp.Enabled)
	assert.True(t, resp.Loaded, "habilitar debe inicializar el plugin en este proceso")

	// La ruta del plugin debe responder una vez habilitado.
	req := httptest.NewRequest(http.MethodGet, "/api/plugins/sample/hello", nil)
	httpResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer httpResp.Body.Close()
	assert.Equal(t, http.StatusOK, httpResp.StatusCode)
}

func TestEnable_NoInstalado_RetornaErrNotFound(t *testing.T) {
	m, _, _ := buildManager()

	_, err := m.Enable("sample-plugin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDisable_ApagaElFlagYDescargaElPlugin(t *testing.T) {
	m, repo, _ := buildManager()
	_, err := m.Install(installReq("sample-plugin"))
	require.NoError(t, err)
	_, err = m.Enable("sample-plugin")
	require.NoError(t, err)

	resp, err := m.Disable("sample-plugin")
	require.NoError(t, err)
	assert.False(t, resp.Enabled)
	assert.False(t, resp.Loaded)
	assert.False(t, repo.records["sample-plugin"].Enabled)
}

func TestUninstall_BorraElEstadoPersistido(t *testing.T) {
	m, repo, _ := buildManager()
	_, err := m.Install(installReq("sample-plugin"))
	require.NoError(t, err)

	require.NoError(t, m.Uninstall("sample-plugin"))
	assert.NotContains(t, repo.records, "sample-plugin")
}

func TestBootstrap_InicializaSoloLosHabilitados(t *testing.T) {
	m, repo, _ := buildManager()
	repo.records["sample-plugin"] = &entity.PluginRecord{
		ID:      "sample-plugin",
		Name:    "Sample Plugin",
		Enabled: true,
	}
	// Un plugin habilitado en DB pero ausente del binario no debe romper el arranque.
	repo.records["legacy-plugin"] = &entity.PluginRecord{
		ID:      "legacy-plugin",
		Name:    "Legacy",
		Enabled: true,
	}

	require.NoError(t, m.Bootstrap())

	resp, err := m.Get("sample-plugin")
	require.NoError(t, err)
	assert.True(t, resp.Loaded, "bootstrap debe inicializar los plugins habilitados")
}
