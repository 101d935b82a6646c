package entity

import "time"

// Supplier representa un proveedor referenciado por las entradas de stock.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
