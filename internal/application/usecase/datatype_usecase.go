package usecase

import (
	"github.com/tu-usuario/catalog-pro/internal/application/dto"
	"github.com/tu-usuario/catalog-pro/internal/domain/entity"
	"github.com/tu-usuario/catalog-pro/internal/domain/repository"
)

// DataTypeUseCase lectura del registro de tipos de dato (para poblar los
// selectores de los formularios de administración).
type DataTypeUseCase struct {
	repo repository.DataTypeRepository
}

// NewDataTypeUseCase construye el caso de uso.
func NewDataTypeUseCase(repo repository.DataTypeRepository) *DataTypeUseCase {
	return &DataTypeUseCase{repo: repo}
}

// List devuelve el registro completo.
func (uc *DataTypeUseCase) List() ([]dto.DataTypeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DataTypeResponse, 0, len(list))
	for _, dt := range list {
		items = append(items, toDataTypeResponse(dt))
	}
	return items, nil
}

func toDataTypeResponse(dt *entity.AttributeDataType) dto.DataTypeResponse {
	return dto.DataTypeResponse{
		DataTypeID:   dt.DataTypeID,
		DataTypeName: dt.DataTypeName,
		IsActive:     dt.IsActive,
		CreatedDate:  dt.CreatedDate,
	}
}
