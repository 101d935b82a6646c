package repository

import (
	"time"

	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// SetResetToken guarda el hash del token de recuperación y su expiración.
	SetResetToken(userID, tokenHash string, expiry time.Time) error
	// GetByResetTokenHash busca el usuario con un token de recuperación vigente.
	GetByResetTokenHash(tokenHash string) (*entity.User, error)
	// UpdatePassword fija el nuevo hash y limpia el token de recuperación.
	UpdatePassword(userID, passwordHash string) error
}
