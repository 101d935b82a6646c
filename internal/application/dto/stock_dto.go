package dto

import "time"

// StockInRequest body para POST /api/stock/in.
type StockInRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	SupplierID string `json:"supplier_id,omitempty"`
}

// StockOutRequest body para POST /api/stock/out.
type StockOutRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// TransactionResponse salida de una entrada del ledger.
type TransactionResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	SupplierID  string    `json:"supplier_id,omitempty"`
	PerformedBy string    `json:"performed_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementResponse respuesta de un movimiento aplicado: producto actualizado
// más la transacción creada.
type MovementResponse struct {
	Message     string              `json:"message"`
	Product     ProductResponse     `json:"product"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionListItem entrada del ledger con nombres resueltos (GET /api/stock).
type TransactionListItem struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	SupplierID    string    `json:"supplier_id,omitempty"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	PerformedBy   string    `json:"performed_by,omitempty"`
	PerformedName string    `json:"performed_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
