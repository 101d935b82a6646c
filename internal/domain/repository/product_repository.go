package repository

import (
	"github.com/shopspring/decimal"

	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
)

// ProductMetadata campos editables vía CRUD. Quantity queda fuera a propósito:
// solo el servicio de movimientos puede modificarla.
type ProductMetadata struct {
	Name          *string
	Category      *string
	Price         *decimal.Decimal
	MinStockLevel *int
}

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (ver stock.TxRunner).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateQuantity fija la cantidad absoluta del producto.
	UpdateQuantity(id string, quantity int) error
	UpdateMetadata(id string, meta ProductMetadata) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Count() (int, error)
	Delete(id string) error
}
