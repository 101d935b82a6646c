package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que exige uno de los roles
// indicados. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto (falta AuthMiddleware).
//   - 403 Forbidden    → el rol del token no está en la lista permitida.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "rol no encontrado en el token",
			})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene acceso a esta operación",
			})
		}
		return c.Next()
	}
}
