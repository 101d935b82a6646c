package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity inicial se acepta solo en la creación; después solo cambia
// vía movimientos de stock.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Category      string          `json:"category" validate:"required"`
	Quantity      int             `json:"quantity" validate:"min=0"`
	Price         decimal.Decimal `json:"price"`
	MinStockLevel *int            `json:"min_stock_level,omitempty"`
}

// UpdateProductRequest entrada para actualizar metadatos de un producto.
// No incluye Quantity: la cantidad solo cambia vía movimientos.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	MinStockLevel *int             `json:"min_stock_level"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	MinStockLevel int             `json:"min_stock_level"`
	LowStock      bool            `json:"low_stock"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
