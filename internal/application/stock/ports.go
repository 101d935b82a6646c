package stock

import (
	"context"
	"time"

	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de cantidad
// y el insert en el ledger sean atómicos: o ambos quedan, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// MovementAppliedEvent notificación de movimiento aplicado (post-commit).
type MovementAppliedEvent struct {
	TransactionID string    `json:"transaction_id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	NewQuantity   int       `json:"new_quantity"`
	PerformedBy   string    `json:"performed_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// LowStockEvent alerta de stock bajo tras un movimiento (post-commit).
type LowStockEvent struct {
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher publica eventos de inventario. La publicación es best-effort:
// un fallo no revierte el movimiento ya confirmado.
type EventPublisher interface {
	MovementApplied(ctx context.Context, ev MovementAppliedEvent) error
	LowStock(ctx context.Context, ev LowStockEvent) error
}
