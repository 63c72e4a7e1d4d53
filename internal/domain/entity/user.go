package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleUser       = "user"
	RoleHR         = "hr"
	RoleAccountant = "accountant"
)

// User usuario de la aplicación. PasswordHash es bcrypt.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	LastLogin    *time.Time
	CreatedAt    time.Time
}
