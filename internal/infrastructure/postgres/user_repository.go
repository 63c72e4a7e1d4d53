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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo adaptador de persistencia para usuarios.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario nuevo. Email duplicado -> ErrEmailAlreadyExists.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT id, email, password_hash, name, role, last_login, created_at FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindByEmail busca un usuario por email (login).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT id, email, password_hash, name, role, last_login, created_at FROM users WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// TouchLastLogin marca el momento del último login exitoso.
func (r *UserRepo) TouchLastLogin(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE users SET last_login = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
