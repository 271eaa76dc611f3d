package repository

import "github.com/tu-usuario/catalog-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetDetails/ListActiveDetails devuelven el modelo hidratado (categoría y
// valores de atributo resueltos).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetDetails(id int) (*entity.ProductDetails, error)
	ListActiveDetails() ([]*entity.ProductDetails, error)
	Update(product *entity.Product) error
}
