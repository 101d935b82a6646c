package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/moganraj05/Inventory-Management-System/internal/domain"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, email, password_hash, role,
	COALESCE(reset_token_hash, ''), COALESCE(reset_token_expiry, 'epoch'::timestamptz),
	created_at, updated_at`

// Create persiste un nuevo usuario. Email duplicado devuelve ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id, "get user by id")
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(query, email, "get user by email")
}

// SetResetToken guarda el hash del token de recuperación y su expiración.
func (r *UserRepo) SetResetToken(userID, tokenHash string, expiry time.Time) error {
	query := `
		UPDATE users SET reset_token_hash = $2, reset_token_expiry = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, tokenHash, expiry)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	return nil
}

// GetByResetTokenHash busca el usuario con ese hash de token; nil si no existe.
// La vigencia del token la valida el caso de uso.
func (r *UserRepo) GetByResetTokenHash(tokenHash string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token_hash = $1`
	return r.scanOne(query, tokenHash, "get user by reset token")
}

// UpdatePassword fija el nuevo hash de contraseña y limpia el token de recuperación.
func (r *UserRepo) UpdatePassword(userID, passwordHash string) error {
	query := `
		UPDATE users SET password_hash = $2, reset_token_hash = NULL, reset_token_expiry = NULL, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(query, arg, op string) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.ResetTokenHash, &u.ResetTokenExpiry, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
