package repository

import "github.com/tu-usuario/catalog-pro/internal/domain/entity"

// DataTypeRepository define el puerto de persistencia para AttributeDataType (DIP).
type DataTypeRepository interface {
	List() ([]*entity.AttributeDataType, error)
	GetByID(id int) (*entity.AttributeDataType, error)
}
