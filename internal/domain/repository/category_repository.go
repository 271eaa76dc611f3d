package repository

import "github.com/tu-usuario/catalog-pro/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las lecturas por ID ignoran IsActive; los listados devuelven solo activas.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	GetDetails(id int) (*entity.CategoryDetails, error)
	ListActiveDetails() ([]*entity.CategoryDetails, error)
	Update(category *entity.Category) error
}
