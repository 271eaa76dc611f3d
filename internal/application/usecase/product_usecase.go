package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/catalog-pro/internal/application/dto"
	"github.com/tu-usuario/catalog-pro/internal/domain"
	"github.com/tu-usuario/catalog-pro/internal/domain/entity"
	"github.com/tu-usuario/catalog-pro/internal/domain/repository"
)

// ProductUseCase ciclo de vida de productos y de sus valores de atributo.
// Todo valor se valida contra el tipo de dato declarado por su definición y
// contra la categoría del producto antes de persistirse.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	valueRepo     repository.ProductAttributeValueRepository
	categoryRepo  repository.CategoryRepository
	attributeRepo repository.CategoryAttributeRepository
	dataTypeRepo  repository.DataTypeRepository
	tx            TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	valueRepo repository.ProductAttributeValueRepository,
	categoryRepo repository.CategoryRepository,
	attributeRepo repository.CategoryAttributeRepository,
	dataTypeRepo repository.DataTypeRepository,
	tx TxRunner,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:   productRepo,
		valueRepo:     valueRepo,
		categoryRepo:  categoryRepo,
		attributeRepo: attributeRepo,
		dataTypeRepo:  dataTypeRepo,
		tx:            tx,
	}
}

// List lista los productos activos hidratados (categoría y valores).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListActiveDetails()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toProductResponse(d))
	}
	return items, nil
}

// GetByID obtiene un producto hidratado por ID, activo o no. nil si no existe.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	details, err := uc.productRepo.GetDetails(id)
	if err != nil || details == nil {
		return nil, err
	}
	out := toProductResponse(details)
	return &out, nil
}

// Create crea un producto, opcionalmente con valores de atributo iniciales en
// el mismo commit. ErrCategoryNotFound si la categoría no existe; ErrDuplicate
// si el SKU ya está tomado; cada valor inicial debe referir a un atributo de
// la categoría del producto y parsear bajo su tipo. Un attributeId repetido en
// la petición colapsa al último valor (nunca produce filas duplicadas). Tras
// el commit el producto se relee hidratado: la respuesta refleja siempre el
// estado confirmado, no la fila en memoria.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	existing, err := uc.productRepo.GetBySKU(in.ProductSKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice != nil && in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// attributeId repetido en la petición: gana el último valor.
	byAttribute := make(map[int]*string, len(in.Attributes))
	order := make([]int, 0, len(in.Attributes))
	for _, v := range in.Attributes {
		if _, dup := byAttribute[v.AttributeID]; !dup {
			order = append(order, v.AttributeID)
		}
		byAttribute[v.AttributeID] = v.Value
	}
	for _, attributeID := range order {
		if err := uc.checkValue(in.CategoryID, attributeID, byAttribute[attributeID]); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	product := &entity.Product{
		CategoryID:         in.CategoryID,
		ProductSKU:         in.ProductSKU,
		ProductName:        in.ProductName,
		ProductDescription: in.ProductDescription,
		Brand:              in.Brand,
		SalePrice:          in.SalePrice,
		CostPrice:          in.CostPrice,
		StockQuantity:      in.StockQuantity,
		IsActive:           true,
		CreatedDate:        now,
		ModifiedDate:       now,
	}

	err = uc.tx.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		valueRepo repository.ProductAttributeValueRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for _, attributeID := range order {
			value := &entity.ProductAttributeValue{
				ProductID:      product.ProductID,
				AttributeID:    attributeID,
				AttributeValue: byAttribute[attributeID],
				CreatedDate:    now,
				ModifiedDate:   now,
			}
			if err := valueRepo.Create(value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Relectura hidratada post-commit.
	details, err := uc.productRepo.GetDetails(product.ProductID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		// La fila confirmada desapareció entre el commit y la relectura
		// (borrado externo). No hay documento que devolver.
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(details)
	return &out, nil
}

// Update actualización parcial. No permite cambiar la categoría. false si el
// producto no existe; ErrDuplicate si el nuevo SKU ya está tomado.
func (uc *ProductUseCase) Update(id int, in dto.UpdateProductRequest) (bool, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	if in.ProductSKU != nil && *in.ProductSKU != product.ProductSKU {
		taken, err := uc.productRepo.GetBySKU(*in.ProductSKU)
		if err != nil {
			return false, err
		}
		if taken != nil {
			return false, domain.ErrDuplicate
		}
		product.ProductSKU = *in.ProductSKU
	}
	if in.ProductName != nil {
		product.ProductName = *in.ProductName
	}
	if in.ProductDescription != nil {
		product.ProductDescription = in.ProductDescription
	}
	if in.Brand != nil {
		product.Brand = in.Brand
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return false, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return false, domain.ErrInvalidInput
		}
		product.CostPrice = in.CostPrice
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	product.ModifiedDate = time.Now().UTC()
	if err := uc.productRepo.Update(product); err != nil {
		return false, err
	}
	return true, nil
}

// Retire borrado lógico del producto.
func (uc *ProductUseCase) Retire(id int) (bool, error) {
	return uc.setActive(id, false)
}

// Restore reactiva un producto retirado.
func (uc *ProductUseCase) Restore(id int) (bool, error) {
	return uc.setActive(id, true)
}

func (uc *ProductUseCase) setActive(id int, active bool) (bool, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	product.IsActive = active
	product.ModifiedDate = time.Now().UTC()
	if err := uc.productRepo.Update(product); err != nil {
		return false, err
	}
	return true, nil
}

// SetAttributeValue upsert del valor de un atributo para un producto.
// ErrNotFound si el producto no existe; ErrAttributeNotFound /
// ErrAttributeNotInCategory si el atributo no existe o es de otra categoría;
// *AttributeValueError si el valor no parsea. La rama existente-vs-nuevo se
// decide sobre una lectura fresca del par (producto, atributo), nunca sobre
// una colección en memoria posiblemente vacía, y la respuesta es la fila
// confirmada releída con los metadatos de la definición.
func (uc *ProductUseCase) SetAttributeValue(productID int, in dto.CreateProductAttributeValueRequest) (*dto.ProductAttributeValueResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkValue(product.CategoryID, in.AttributeID, in.Value); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	existing, err := uc.valueRepo.GetByProductAndAttribute(productID, in.AttributeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.AttributeValue = in.Value
		existing.ModifiedDate = now
		if err := uc.valueRepo.Update(existing); err != nil {
			return nil, err
		}
	} else {
		value := &entity.ProductAttributeValue{
			ProductID:      productID,
			AttributeID:    in.AttributeID,
			AttributeValue: in.Value,
			CreatedDate:    now,
			ModifiedDate:   now,
		}
		if err := uc.valueRepo.Create(value); err != nil {
			return nil, err
		}
	}

	detail, err := uc.valueRepo.GetDetail(productID, in.AttributeID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductAttributeValueResponse(detail)
	return &out, nil
}

// UpdateAttributeValue actualiza un valor existente (update-only, sin insert).
// false si el par (producto, atributo) no tiene fila.
func (uc *ProductUseCase) UpdateAttributeValue(productID, attributeID int, in dto.UpdateProductAttributeValueRequest) (bool, error) {
	row, err := uc.valueRepo.GetByProductAndAttribute(productID, attributeID)
	if err != nil {
		return false, err
	}
	if row == nil {
		return false, nil
	}
	attribute, err := uc.attributeRepo.GetByID(attributeID)
	if err != nil {
		return false, err
	}
	if attribute == nil {
		return false, nil
	}
	if err := uc.validateTyped(attribute, in.Value); err != nil {
		return false, err
	}
	row.AttributeValue = in.Value
	row.ModifiedDate = time.Now().UTC()
	if err := uc.valueRepo.Update(row); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAttributeValue borrado físico de la fila de valor. false si el par no
// existe; el almacenamiento queda intacto en ese caso.
func (uc *ProductUseCase) RemoveAttributeValue(productID, attributeID int) (bool, error) {
	row, err := uc.valueRepo.GetByProductAndAttribute(productID, attributeID)
	if err != nil {
		return false, err
	}
	if row == nil {
		return false, nil
	}
	if err := uc.valueRepo.Delete(row.ProductAttributeID); err != nil {
		return false, err
	}
	return true, nil
}

// checkValue valida que el atributo exista, pertenezca a la categoría dada y
// que el valor parsee bajo su tipo declarado.
func (uc *ProductUseCase) checkValue(categoryID, attributeID int, value *string) error {
	attribute, err := uc.attributeRepo.GetByID(attributeID)
	if err != nil {
		return err
	}
	if attribute == nil {
		return domain.ErrAttributeNotFound
	}
	if attribute.CategoryID != categoryID {
		return domain.ErrAttributeNotInCategory
	}
	return uc.validateTyped(attribute, value)
}

func (uc *ProductUseCase) validateTyped(attribute *entity.CategoryAttribute, value *string) error {
	dataType, err := uc.dataTypeRepo.GetByID(attribute.DataTypeID)
	if err != nil {
		return err
	}
	if dataType == nil {
		return domain.ErrDataTypeNotFound
	}
	return domain.ValidateValue(attribute.AttributeName, dataType.DataTypeName, value)
}

func toProductResponse(d *entity.ProductDetails) dto.ProductResponse {
	out := dto.ProductResponse{
		ProductID:          d.ProductID,
		CategoryID:         d.CategoryID,
		CategoryName:       d.CategoryName,
		ProductSKU:         d.ProductSKU,
		ProductName:        d.ProductName,
		ProductDescription: d.ProductDescription,
		Brand:              d.Brand,
		SalePrice:          d.SalePrice,
		CostPrice:          d.CostPrice,
		StockQuantity:      d.StockQuantity,
		IsActive:           d.IsActive,
		CreatedDate:        d.CreatedDate,
		ModifiedDate:       d.ModifiedDate,
		Attributes:         make([]dto.ProductAttributeValueResponse, 0, len(d.Attributes)),
	}
	for i := range d.Attributes {
		out.Attributes = append(out.Attributes, toProductAttributeValueResponse(&d.Attributes[i]))
	}
	return out
}

func toProductAttributeValueResponse(d *entity.ProductAttributeDetail) dto.ProductAttributeValueResponse {
	return dto.ProductAttributeValueResponse{
		AttributeID:          d.AttributeID,
		AttributeName:        d.AttributeName,
		AttributeDisplayName: d.AttributeDisplayName,
		DataTypeName:         d.DataTypeName,
		Value:                d.AttributeValue,
	}
}
