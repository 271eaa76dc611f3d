package repository

import "github.com/tu-usuario/catalog-pro/internal/domain/entity"

// ProductAttributeValueRepository define el puerto de persistencia para las
// filas de valor (producto, atributo). GetByProductAndAttribute es la lectura
// fresca sobre la que decide el upsert; Delete es borrado físico.
type ProductAttributeValueRepository interface {
	Create(value *entity.ProductAttributeValue) error
	GetByProductAndAttribute(productID, attributeID int) (*entity.ProductAttributeValue, error)
	GetDetail(productID, attributeID int) (*entity.ProductAttributeDetail, error)
	Update(value *entity.ProductAttributeValue) error
	Delete(productAttributeID int64) error
}
