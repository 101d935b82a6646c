package dto

// StockTypeSummaryDTO total de unidades por tipo de movimiento.
type StockTypeSummaryDTO struct {
	Type          string `json:"type"`
	TotalQuantity int    `json:"total_quantity"`
}

/// DashboardSummaryDTO resumen del dashboard: conteos, stock bajo,
// sumas por tipo y actividad reciente.
type DashboardSummaryDTO struct {
	TotalProducts      int                   `json:"total_products"`
	TotalCategories    int                   `json:"total_categories"`
	TotalSuppliers     int                   `json:"total_suppliers"`
	LowStockCount      int                   `json:"low_stock_count"`
	LowStockProducts   []ProductResponse     `json:"low_stock_products"`
	StockSummary       []StockTypeSummaryDTO `json:"stock_summary"`
	RecentTransactions []TransactionListItem `json:"recent_transactions"`
}
