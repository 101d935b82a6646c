package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/moganraj05/Inventory-Management-System/internal/application/analytics"
	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
)

// DashboardHandler maneja el endpoint de resumen del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del inventario.
// GET /api/dashboard
//
// Respuesta: DashboardSummaryDTO (total_products, total_categories,
// total_suppliers, low_stock_count, low_stock_products, stock_summary,
// recent_transactions[5]).
// No requiere parámetros; puede servirse desde el caché Redis con TTL corto.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
