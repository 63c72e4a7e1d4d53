package repository

import "github.com/kellyos/kellyos-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	TouchLastLogin(id string) error
}
