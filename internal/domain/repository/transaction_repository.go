package repository

import (
	"time"

	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
)

// TransactionWithNames entrada del ledger con nombres de producto, proveedor
// y actor ya resueltos (para listados).
type TransactionWithNames struct {
	ID            string
	ProductID     string
	ProductName   string
	Type          string
	Quantity      int
	SupplierID    string
	SupplierName  string
	PerformedBy   string
	PerformedName string
	CreatedAt     time.Time
}

// TransactionRepository puerto de persistencia para el ledger de movimientos.
// Es append-only: no existe Update ni Delete.
type TransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	// ListWithNames devuelve todas las transacciones ordenadas por fecha
	// descendente, con nombres de producto, proveedor y usuario resueltos.
	ListWithNames(limit, offset int) ([]TransactionWithNames, error)
}
