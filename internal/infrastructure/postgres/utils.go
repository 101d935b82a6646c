package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de clave duplicada.
const uniqueViolationCode = "23505"

// isUniqueViolation reconoce la violación de constraint único que los
// repositorios traducen a errores de dominio (email o nombre ya registrado).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
