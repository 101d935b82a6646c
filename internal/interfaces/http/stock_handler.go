package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/internal/application/stock"
	"github.com/moganraj05/Inventory-Management-System/internal/application/usecase"
	"github.com/moganraj05/Inventory-Management-System/internal/domain"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
)

// StockHandler maneja los movimientos de stock y la lectura del ledger (protegido).
type StockHandler struct {
	movements *stock.MovementUseCase
	ledger    *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(movements *stock.MovementUseCase, ledger *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{movements: movements, ledger: ledger}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "product_id, quantity (> 0), supplier_id (opcional)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/in [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, tx, err := h.movements.StockInFromRequest(c.Context(), userID, in)
	if err != nil {
		return h.movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementResponse("entrada registrada", product, tx))
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  Falla con 400 (INSUFFICIENT_STOCK) si la cantidad solicitada
// @Description  supera el stock disponible; el producto y el ledger quedan intactos.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "product_id, quantity (> 0)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/out [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, tx, err := h.movements.StockOutFromRequest(c.Context(), userID, in)
	if err != nil {
		return h.movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementResponse("salida registrada", product, tx))
}

// ListTransactions godoc
// @Summary      Listar el libro de movimientos
// @Description  Transacciones ordenadas por fecha descendente con nombres de
// @Description  producto, proveedor y usuario resueltos. Respuesta paginada:
// @Description  por defecto 20 filas, máximo 100 por página; usar offset para
// @Description  recorrer el ledger completo.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Filas por página (máximo 100)"  default(20)
// @Param        offset  query  int  false  "Desplazamiento"                 default(0)
// @Success      200     {array}  dto.TransactionListItem
// @Router       /api/stock [get]
func (h *StockHandler) ListTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.ledger.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *StockHandler) movementError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido y quantity debe ser un entero positivo"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o proveedor no encontrado"})
	}
	if err == domain.ErrInsufficientStock {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func movementResponse(message string, product *entity.Product, tx *entity.StockTransaction) dto.MovementResponse {
	return dto.MovementResponse{
		Message: message,
		Product: *usecase.ToProductResponse(product),
		Transaction: dto.TransactionResponse{
			ID:          tx.ID,
			ProductID:   tx.ProductID,
			Type:        tx.Type,
			Quantity:    tx.Quantity,
			SupplierID:  tx.SupplierID,
			PerformedBy: tx.PerformedBy,
			CreatedAt:   tx.CreatedAt,
		},
	}
}
