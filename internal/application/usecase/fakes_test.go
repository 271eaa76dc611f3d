package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/catalog-pro/internal/application/usecase"
	"github.com/tu-usuario/catalog-pro/internal/domain"
	"github.com/tu-usuario/catalog-pro/internal/domain/entity"
	"github.com/tu-usuario/catalog-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Guardan y devuelven copias
// para que mutar una entidad devuelta no altere el "almacenamiento" del test,
// y replican las restricciones de unicidad del esquema devolviendo
// domain.ErrDuplicate como lo haría el adaptador de PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fakeDataTypeRepo struct {
	items map[int]entity.AttributeDataType
}

func newFakeDataTypeRepo() *fakeDataTypeRepo {
	// Registro sembrado como en la migración 002.
	names := []string{
		domain.DataTypeString, domain.DataTypeInteger, domain.DataTypeDecimal,
		domain.DataTypeBoolean, domain.DataTypeDate, domain.DataTypeJSON,
	}
	items := make(map[int]entity.AttributeDataType, len(names))
	for i, n := range names {
		items[i+1] = entity.AttributeDataType{
			DataTypeID:   i + 1,
			DataTypeName: n,
			IsActive:     true,
			CreatedDate:  time.Now().UTC(),
		}
	}
	return &fakeDataTypeRepo{items: items}
}

func (f *fakeDataTypeRepo) List() ([]*entity.AttributeDataType, error) {
	ids := make([]int, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*entity.AttributeDataType, 0, len(ids))
	for _, id := range ids {
		dt := f.items[id]
		out = append(out, &dt)
	}
	return out, nil
}

func (f *fakeDataTypeRepo) GetByID(id int) (*entity.AttributeDataType, error) {
	dt, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &dt, nil
}

type fakeCategoryRepo struct {
	nextID int
	items  map[int]entity.Category
	attrs  *fakeAttributeRepo
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	for _, c := range f.items {
		if c.CategoryName == category.CategoryName {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	category.CategoryID = f.nextID
	f.items[category.CategoryID] = *category
	return nil
}

func (f *fakeCategoryRepo) GetByID(id int) (*entity.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range f.items {
		if c.CategoryName == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetDetails(id int) (*entity.CategoryDetails, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	details := &entity.CategoryDetails{Category: c}
	attrs, _ := f.attrs.ListByCategory(id)
	for _, a := range attrs {
		details.Attributes = append(details.Attributes, *a)
	}
	return details, nil
}

func (f *fakeCategoryRepo) ListActiveDetails() ([]*entity.CategoryDetails, error) {
	ids := make([]int, 0, len(f.items))
	for id, c := range f.items {
		if c.IsActive {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]*entity.CategoryDetails, 0, len(ids))
	for _, id := range ids {
		d, _ := f.GetDetails(id)
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(category *entity.Category) error {
	f.items[category.CategoryID] = *category
	return nil
}

type fakeAttributeRepo struct {
	nextID int
	items  map[int]entity.CategoryAttribute
}

func (f *fakeAttributeRepo) Create(attribute *entity.CategoryAttribute) error {
	for _, a := range f.items {
		if a.CategoryID == attribute.CategoryID && a.AttributeName == attribute.AttributeName {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	attribute.AttributeID = f.nextID
	f.items[attribute.AttributeID] = *attribute
	return nil
}

func (f *fakeAttributeRepo) GetByID(id int) (*entity.CategoryAttribute, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAttributeRepo) GetByCategoryAndName(categoryID int, name string) (*entity.CategoryAttribute, error) {
	for _, a := range f.items {
		if a.CategoryID == categoryID && a.AttributeName == name {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAttributeRepo) ListByCategory(categoryID int) ([]*entity.CategoryAttribute, error) {
	ids := make([]int, 0)
	for id, a := range f.items {
		if a.CategoryID == categoryID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]*entity.CategoryAttribute, 0, len(ids))
	for _, id := range ids {
		a := f.items[id]
		out = append(out, &a)
	}
	return out, nil
}

func (f *fakeAttributeRepo) Update(attribute *entity.CategoryAttribute) error {
	f.items[attribute.AttributeID] = *attribute
	return nil
}

type fakeProductRepo struct {
	nextID     int
	items      map[int]entity.Product
	categories *fakeCategoryRepo
	values     *fakeValueRepo
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range f.items {
		if p.ProductSKU == product.ProductSKU {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	product.ProductID = f.nextID
	f.items[product.ProductID] = *product
	return nil
}

func (f *fakeProductRepo) GetByID(id int) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.items {
		if p.ProductSKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetDetails(id int) (*entity.ProductDetails, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	details := &entity.ProductDetails{Product: p}
	if c, _ := f.categories.GetByID(p.CategoryID); c != nil {
		details.CategoryName = c.CategoryName
	}
	details.Attributes = f.values.detailsFor(id)
	return details, nil
}

func (f *fakeProductRepo) ListActiveDetails() ([]*entity.ProductDetails, error) {
	ids := make([]int, 0, len(f.items))
	for id, p := range f.items {
		if p.IsActive {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]*entity.ProductDetails, 0, len(ids))
	for _, id := range ids {
		d, _ := f.GetDetails(id)
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	f.items[product.ProductID] = *product
	return nil
}

type fakeValueRepo struct {
	nextID    int64
	items     map[int64]entity.ProductAttributeValue
	attrs     *fakeAttributeRepo
	dataTypes *fakeDataTypeRepo
}

func (f *fakeValueRepo) Create(value *entity.ProductAttributeValue) error {
	// Índice único (product_id, attribute_id): una fila por par.
	for _, v := range f.items {
		if v.ProductID == value.ProductID && v.AttributeID == value.AttributeID {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	value.ProductAttributeID = f.nextID
	f.items[value.ProductAttributeID] = *value
	return nil
}

func (f *fakeValueRepo) GetByProductAndAttribute(productID, attributeID int) (*entity.ProductAttributeValue, error) {
	for _, v := range f.items {
		if v.ProductID == productID && v.AttributeID == attributeID {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeValueRepo) GetDetail(productID, attributeID int) (*entity.ProductAttributeDetail, error) {
	row, _ := f.GetByProductAndAttribute(productID, attributeID)
	if row == nil {
		return nil, nil
	}
	d := f.toDetail(row)
	return &d, nil
}

func (f *fakeValueRepo) Update(value *entity.ProductAttributeValue) error {
	f.items[value.ProductAttributeID] = *value
	return nil
}

func (f *fakeValueRepo) Delete(productAttributeID int64) error {
	delete(f.items, productAttributeID)
	return nil
}

func (f *fakeValueRepo) detailsFor(productID int) []entity.ProductAttributeDetail {
	ids := make([]int64, 0)
	for id, v := range f.items {
		if v.ProductID == productID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]entity.ProductAttributeDetail, 0, len(ids))
	for _, id := range ids {
		v := f.items[id]
		out = append(out, f.toDetail(&v))
	}
	return out
}

func (f *fakeValueRepo) toDetail(v *entity.ProductAttributeValue) entity.ProductAttributeDetail {
	d := entity.ProductAttributeDetail{
		ProductAttributeID: v.ProductAttributeID,
		AttributeID:        v.AttributeID,
		AttributeValue:     v.AttributeValue,
	}
	if a, _ := f.attrs.GetByID(v.AttributeID); a != nil {
		d.AttributeName = a.AttributeName
		d.AttributeDisplayName = a.AttributeDisplayName
		if dt, _ := f.dataTypes.GetByID(a.DataTypeID); dt != nil {
			d.DataTypeName = dt.DataTypeName
		}
	}
	return d
}

// fakeTxRunner pasa los mismos fakes al callback: el test observa el estado
// "confirmado" directamente (aquí no se simula rollback).
type fakeTxRunner struct {
	categories *fakeCategoryRepo
	attrs      *fakeAttributeRepo
	products   *fakeProductRepo
	values     *fakeValueRepo
}

func (f *fakeTxRunner) RunCategory(_ context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	attributeRepo repository.CategoryAttributeRepository,
) error) error {
	return fn(f.categories, f.attrs)
}

func (f *fakeTxRunner) RunProduct(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	valueRepo repository.ProductAttributeValueRepository,
) error) error {
	return fn(f.products, f.values)
}

// fixture agrupa los fakes y los casos de uso construidos sobre ellos.
type fixture struct {
	dataTypes  *fakeDataTypeRepo
	categories *fakeCategoryRepo
	attrs      *fakeAttributeRepo
	products   *fakeProductRepo
	values     *fakeValueRepo

	categoryUC *usecase.CategoryUseCase
	productUC  *usecase.ProductUseCase
}

func newFixture() *fixture {
	dataTypes := newFakeDataTypeRepo()
	attrs := &fakeAttributeRepo{items: map[int]entity.CategoryAttribute{}}
	categories := &fakeCategoryRepo{items: map[int]entity.Category{}, attrs: attrs}
	values := &fakeValueRepo{items: map[int64]entity.ProductAttributeValue{}, attrs: attrs, dataTypes: dataTypes}
	products := &fakeProductRepo{items: map[int]entity.Product{}, categories: categories, values: values}
	tx := &fakeTxRunner{categories: categories, attrs: attrs, products: products, values: values}

	return &fixture{
		dataTypes:  dataTypes,
		categories: categories,
		attrs:      attrs,
		products:   products,
		values:     values,
		categoryUC: usecase.NewCategoryUseCase(categories, attrs, dataTypes, tx),
		productUC:  usecase.NewProductUseCase(products, values, categories, attrs, dataTypes, tx),
	}
}

// IDs sembrados por newFakeDataTypeRepo, en el orden de la migración.
const (
	dtString  = 1
	dtInteger = 2
	dtDecimal = 3
	dtBoolean = 4
	dtDate    = 5
	dtJSON    = 6
)

func ptr(s string) *string { return &s }
