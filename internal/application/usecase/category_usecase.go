package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/catalog-pro/internal/application/dto"
	"github.com/tu-usuario/catalog-pro/internal/domain"
	"github.com/tu-usuario/catalog-pro/internal/domain/entity"
	"github.com/tu-usuario/catalog-pro/internal/domain/repository"
)

// CategoryUseCase ciclo de vida de categorías y de sus definiciones de
// atributo. El borrado es siempre lógico; los listados devuelven solo
// categorías activas y las lecturas por ID ignoran el flag.
type CategoryUseCase struct {
	categoryRepo  repository.CategoryRepository
	attributeRepo repository.CategoryAttributeRepository
	dataTypeRepo  repository.DataTypeRepository
	tx            TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	attributeRepo repository.CategoryAttributeRepository,
	dataTypeRepo repository.DataTypeRepository,
	tx TxRunner,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo:  categoryRepo,
		attributeRepo: attributeRepo,
		dataTypeRepo:  dataTypeRepo,
		tx:            tx,
	}
}

// List lista las categorías activas con sus definiciones de atributo.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.ListActiveDetails()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, cd := range list {
		items = append(items, toCategoryResponse(cd))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID, activa o no, con todas sus
// definiciones de atributo (activas e inactivas). nil si no existe.
func (uc *CategoryUseCase) GetByID(id int) (*dto.CategoryResponse, error) {
	details, err := uc.categoryRepo.GetDetails(id)
	if err != nil || details == nil {
		return nil, err
	}
	out := toCategoryResponse(details)
	return &out, nil
}

// Create crea una categoría, opcionalmente con atributos iniciales en el
// mismo commit. Pre-chequea la unicidad del nombre (ErrDuplicate) y valida
// cada atributo inicial: tipo de dato existente, nombres no repetidos en la
// petición y defaultValue parseable bajo el tipo declarado.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.categoryRepo.GetByName(in.CategoryName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now().UTC()
	attributes := make([]*entity.CategoryAttribute, 0, len(in.Attributes))
	seen := make(map[string]bool, len(in.Attributes))
	for _, a := range in.Attributes {
		if seen[a.AttributeName] {
			return nil, domain.ErrDuplicate
		}
		seen[a.AttributeName] = true
		if _, err := uc.resolveDataType(a.AttributeName, a.DataTypeID, a.DefaultValue); err != nil {
			return nil, err
		}
		attributes = append(attributes, &entity.CategoryAttribute{
			AttributeName:        a.AttributeName,
			AttributeDisplayName: a.AttributeDisplayName,
			DataTypeID:           a.DataTypeID,
			DefaultValue:         a.DefaultValue,
			IsActive:             true,
			CreatedDate:          now,
			ModifiedDate:         now,
		})
	}

	category := &entity.Category{
		CategoryName:        in.CategoryName,
		CategoryDescription: in.CategoryDescription,
		IsActive:            true,
		CreatedDate:         now,
		ModifiedDate:        now,
	}

	err = uc.tx.RunCategory(ctx, func(
		categoryRepo repository.CategoryRepository,
		attributeRepo repository.CategoryAttributeRepository,
	) error {
		if err := categoryRepo.Create(category); err != nil {
			return err
		}
		for _, a := range attributes {
			a.CategoryID = category.CategoryID
			if err := attributeRepo.Create(a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := &entity.CategoryDetails{Category: *category}
	for _, a := range attributes {
		details.Attributes = append(details.Attributes, *a)
	}
	out := toCategoryResponse(details)
	return &out, nil
}

// Update actualización parcial: los campos ausentes no cambian. false si la
// categoría no existe; ErrDuplicate si el nuevo nombre ya está tomado.
func (uc *CategoryUseCase) Update(id int, in dto.UpdateCategoryRequest) (bool, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, nil
	}
	if in.CategoryName != nil && *in.CategoryName != category.CategoryName {
		taken, err := uc.categoryRepo.GetByName(*in.CategoryName)
		if err != nil {
			return false, err
		}
		if taken != nil {
			return false, domain.ErrDuplicate
		}
		category.CategoryName = *in.CategoryName
	}
	if in.CategoryDescription != nil {
		category.CategoryDescription = in.CategoryDescription
	}
	category.ModifiedDate = time.Now().UTC()
	if err := uc.categoryRepo.Update(category); err != nil {
		return false, err
	}
	return true, nil
}

// Retire borrado lógico. No cascada a productos ni a definiciones de atributo.
func (uc *CategoryUseCase) Retire(id int) (bool, error) {
	return uc.setActive(id, false)
}

// Restore reactiva una categoría retirada.
func (uc *CategoryUseCase) Restore(id int) (bool, error) {
	return uc.setActive(id, true)
}

func (uc *CategoryUseCase) setActive(id int, active bool) (bool, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, nil
	}
	category.IsActive = active
	category.ModifiedDate = time.Now().UTC()
	if err := uc.categoryRepo.Update(category); err != nil {
		return false, err
	}
	return true, nil
}

// AddAttribute define un atributo tipado en una categoría existente.
// ErrNotFound si la categoría no existe; ErrDuplicate si (categoría, nombre)
// ya está tomado; valida el tipo de dato y el defaultValue.
func (uc *CategoryUseCase) AddAttribute(categoryID int, in dto.CreateCategoryAttributeRequest) (*dto.CategoryAttributeResponse, error) {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.attributeRepo.GetByCategoryAndName(categoryID, in.AttributeName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if _, err := uc.resolveDataType(in.AttributeName, in.DataTypeID, in.DefaultValue); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	attribute := &entity.CategoryAttribute{
		CategoryID:           categoryID,
		AttributeName:        in.AttributeName,
		AttributeDisplayName: in.AttributeDisplayName,
		DataTypeID:           in.DataTypeID,
		DefaultValue:         in.DefaultValue,
		IsActive:             true,
		CreatedDate:          now,
		ModifiedDate:         now,
	}
	if err := uc.attributeRepo.Create(attribute); err != nil {
		return nil, err
	}
	out := toCategoryAttributeResponse(attribute)
	return &out, nil
}

// UpdateAttribute renombra un atributo (nombre y/o etiqueta, parcial).
// false si no existe o está inactivo. El renombre re-chequea la unicidad
// por categoría.
func (uc *CategoryUseCase) UpdateAttribute(attributeID int, in dto.UpdateCategoryAttributeRequest) (bool, error) {
	attribute, err := uc.attributeRepo.GetByID(attributeID)
	if err != nil {
		return false, err
	}
	if attribute == nil || !attribute.IsActive {
		return false, nil
	}
	if in.AttributeName != nil && *in.AttributeName != attribute.AttributeName {
		taken, err := uc.attributeRepo.GetByCategoryAndName(attribute.CategoryID, *in.AttributeName)
		if err != nil {
			return false, err
		}
		if taken != nil {
			return false, domain.ErrDuplicate
		}
		attribute.AttributeName = *in.AttributeName
	}
	if in.AttributeDisplayName != nil {
		attribute.AttributeDisplayName = *in.AttributeDisplayName
	}
	attribute.ModifiedDate = time.Now().UTC()
	if err := uc.attributeRepo.Update(attribute); err != nil {
		return false, err
	}
	return true, nil
}

// RetireAttribute borrado lógico de la definición. Las filas de valor
// existentes no se tocan: quedan como historial válido.
func (uc *CategoryUseCase) RetireAttribute(attributeID int) (bool, error) {
	return uc.setAttributeActive(attributeID, false)
}

// RestoreAttribute reactiva una definición retirada.
func (uc *CategoryUseCase) RestoreAttribute(attributeID int) (bool, error) {
	return uc.setAttributeActive(attributeID, true)
}

func (uc *CategoryUseCase) setAttributeActive(attributeID int, active bool) (bool, error) {
	attribute, err := uc.attributeRepo.GetByID(attributeID)
	if err != nil {
		return false, err
	}
	if attribute == nil {
		return false, nil
	}
	attribute.IsActive = active
	attribute.ModifiedDate = time.Now().UTC()
	if err := uc.attributeRepo.Update(attribute); err != nil {
		return false, err
	}
	return true, nil
}

// resolveDataType valida que el tipo de dato exista y que el defaultValue,
// si viene, parsee bajo sus reglas.
func (uc *CategoryUseCase) resolveDataType(attributeName string, dataTypeID int, defaultValue *string) (*entity.AttributeDataType, error) {
	dataType, err := uc.dataTypeRepo.GetByID(dataTypeID)
	if err != nil {
		return nil, err
	}
	if dataType == nil {
		return nil, domain.ErrDataTypeNotFound
	}
	if err := domain.ValidateValue(attributeName, dataType.DataTypeName, defaultValue); err != nil {
		return nil, err
	}
	return dataType, nil
}

func toCategoryResponse(cd *entity.CategoryDetails) dto.CategoryResponse {
	out := dto.CategoryResponse{
		CategoryID:          cd.CategoryID,
		CategoryName:        cd.CategoryName,
		CategoryDescription: cd.CategoryDescription,
		IsActive:            cd.IsActive,
		CreatedDate:         cd.CreatedDate,
		ModifiedDate:        cd.ModifiedDate,
		Attributes:          make([]dto.CategoryAttributeResponse, 0, len(cd.Attributes)),
	}
	for i := range cd.Attributes {
		out.Attributes = append(out.Attributes, toCategoryAttributeResponse(&cd.Attributes[i]))
	}
	return out
}

func toCategoryAttributeResponse(a *entity.CategoryAttribute) dto.CategoryAttributeResponse {
	return dto.CategoryAttributeResponse{
		AttributeID:          a.AttributeID,
		CategoryID:           a.CategoryID,
		AttributeName:        a.AttributeName,
		AttributeDisplayName: a.AttributeDisplayName,
		DataTypeID:           a.DataTypeID,
		DefaultValue:         a.DefaultValue,
		IsActive:             a.IsActive,
		CreatedDate:          a.CreatedDate,
		ModifiedDate:         a.ModifiedDate,
	}
}
