package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
	"github.com/kellyos/kellyos-api/pkg/config"
	"github.com/kellyos/kellyos-api/pkg/jwt"
)

// Roles válidos para el registro.
var validRoles = map[string]bool{
	entity.RoleAdmin:      true,
	entity.RoleManager:    true,
	entity.RoleUser:       true,
	entity.RoleHR:         true,
	entity.RoleAccountant: true,
}

// UseCase casos de uso de autenticación: registro, login y refresh.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg config.JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe. Role vacío = "user".
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !validRoles[role] {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.users.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return uc.tokensFor(user)
}

// Login verifica email/password, marca el último login y devuelve usuario +
// par de tokens. Credenciales inválidas no distinguen usuario inexistente de
// password incorrecto.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	_ = uc.users.TouchLastLogin(user.ID)
	return uc.tokensFor(user)
}

// Refresh valida el refresh token y emite un access token nuevo. Email y
// role se releen de la DB: el refresh token solo lleva el userID.
func (uc *UseCase) Refresh(in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	userID, _, _, err := jwt.Parse(uc.jwtCfg.Secret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

func (uc *UseCase) tokensFor(user *entity.User) (*dto.AuthResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
