package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema.
// ResetTokenHash guarda el sha256 del token de recuperación de contraseña
// (vacío si no hay recuperación en curso); nunca se persiste el token plano.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string // bcrypt hash, nunca plano en dominio después de persistir
	Role             string // admin, staff
	ResetTokenHash   string
	ResetTokenExpiry time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
