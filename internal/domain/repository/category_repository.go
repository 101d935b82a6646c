package repository

import "github.com/moganraj05/Inventory-Management-System/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Count() (int, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
