package repository

import "github.com/moganraj05/Inventory-Management-System/internal/domain/entity"

// StockTypeSummary total de unidades movidas por tipo de transacción.
type StockTypeSummary struct {
	Type          string
	TotalQuantity int
}

// DashboardRepository consultas de solo lectura para el resumen del dashboard.
// Ningún método muta estado.
type DashboardRepository interface {
	CountProducts() (int, error)
	CountCategories() (int, error)
	CountSuppliers() (int, error)
	// ListLowStock devuelve los productos con quantity <= min_stock_level.
	ListLowStock() ([]*entity.Product, error)
	// StockSummaryByType agrupa la suma de cantidades por tipo (IN/OUT)
	// sobre todo el ledger.
	StockSummaryByType() ([]StockTypeSummary, error)
	// RecentTransactions devuelve las últimas n transacciones con nombres
	// de producto y actor resueltos.
	RecentTransactions(n int) ([]TransactionWithNames, error)
}
