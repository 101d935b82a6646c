package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity solo se modifica a través del servicio de movimientos de stock;
// el resto de campos se editan vía CRUD (actualización de metadatos).
type Product struct {
	ID            string
	Name          string
	Category      string // etiqueta libre, referencia por nombre a Category
	Quantity      int    // nunca negativo
	Price         decimal.Decimal
	MinStockLevel int // umbral de "stock bajo" (por defecto 5)
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el producto está en stock bajo (Quantity <= MinStockLevel).
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStockLevel
}
