package repository

import "github.com/moganraj05/Inventory-Management-System/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Count() (int, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
