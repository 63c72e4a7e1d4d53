package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellyos/kellyos-api/internal/application/auth"
	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/pkg/config"
	pkgjwt "github.com/kellyos/kellyos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User // por ID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) TouchLastLogin(id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

func testJWTCfg() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret-de-tests-no-usar-en-prod",
		AccessExpMinutes:  15,
		RefreshExpMinutes: 60,
		Issuer:            "kellyos-test",
	}
}

func buildAuthUC() (*auth.UseCase, *memUserRepo) {
	repo := newMemUserRepo()
	return auth.NewUseCase(repo, testJWTCfg()), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYDevuelveTokens(t *testing.T) {
	uc, repo := buildAuthUC()

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@kellyos.test",
		Password: "contraseña-larga",
		Name:     "Ana",
		Role:     entity.RoleManager,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@kellyos.test", resp.User.Email)
	assert.Equal(t, entity.RoleManager, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// El hash persiste, nunca el password plano.
	stored, _ := repo.FindByEmail("ana@kellyos.test")
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)

	// El access token lleva los claims del usuario.
	userID, email, role, err := pkgjwt.Parse(testJWTCfg().Secret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, "ana@kellyos.test", email)
	assert.Equal(t, entity.RoleManager, role)
}

func TestRegister_RolVacio_CaeAlRolUser(t *testing.T) {
	uc, _ := buildAuthUC()

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@kellyos.test",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.User.Role)
	assert.Equal(t, "ana@kellyos.test", resp.User.Name,
		"sin nombre explícito se usa el email")
}

func TestRegister_RolDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@kellyos.test",
		Password: "contraseña-larga",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PasswordCorto_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@kellyos.test",
		Password: "corto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado_RetornaErrEmailAlreadyExists(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@kellyos.test", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@kellyos.test", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login / Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_MarcaUltimoLogin(t *testing.T) {
	uc, repo := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@kellyos.test", Password: "contraseña-larga"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@kellyos.test", Password: "contraseña-larga"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	stored, _ := repo.FindByEmail("ana@kellyos.test")
	assert.NotNil(t, stored.LastLogin, "el login exitoso debe marcar last_login")
}

// Usuario inexistente y password incorrecto devuelven el mismo error: la
// respuesta no debe revelar cuál de los dos falló.
func TestLogin_CredencialesInvalidas_RetornaErrUnauthorized(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@kellyos.test", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@kellyos.test", Password: "incorrecta!"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@kellyos.test", Password: "da igual"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_EmiteAccessTokenConClaimsDeLaDB(t *testing.T) {
	uc, repo := buildAuthUC()
	reg, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@kellyos.test",
		Password: "contraseña-larga",
		Role:     entity.RoleHR,
	})
	require.NoError(t, err)

	resp, err := uc.Refresh(dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	require.NoError(t, err)

	stored, _ := repo.FindByEmail("ana@kellyos.test")
	userID, email, role, err := pkgjwt.Parse(testJWTCfg().Secret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, "ana@kellyos.test", email)
	assert.Equal(t, entity.RoleHR, role, "email y role se releen de la DB al refrescar")
}

func TestRefresh_TokenInvalido_RetornaErrUnauthorized(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Refresh(dto.RefreshRequest{RefreshToken: "no.es.un.jwt"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
