package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIN  = "IN"  // entrada (recepción de proveedor)
	TransactionTypeOUT = "OUT" // salida (consumo o venta)
)

// StockTransaction es una entrada del libro de movimientos (ledger).
// Es inmutable: una vez creada nunca se actualiza ni se elimina.
type StockTransaction struct {
	ID          string
	ProductID   string
	Type        string // IN u OUT
	Quantity    int    // siempre positivo; el signo lo da Type
	SupplierID  string // opcional, presente en entradas
	PerformedBy string // UserID del actor
	CreatedAt   time.Time
}
