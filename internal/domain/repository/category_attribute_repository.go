package repository

import "github.com/tu-usuario/catalog-pro/internal/domain/entity"

// CategoryAttributeRepository define el puerto de persistencia para las
// definiciones de atributo de una categoría (DIP).
type CategoryAttributeRepository interface {
	Create(attribute *entity.CategoryAttribute) error
	GetByID(id int) (*entity.CategoryAttribute, error)
	GetByCategoryAndName(categoryID int, name string) (*entity.CategoryAttribute, error)
	ListByCategory(categoryID int) ([]*entity.CategoryAttribute, error)
	Update(attribute *entity.CategoryAttribute) error
}
