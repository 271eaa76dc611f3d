package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/catalog-pro/internal/application/dto"
	"github.com/tu-usuario/catalog-pro/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_ConAtributosIniciales(t *testing.T) {
	fx := newFixture()

	out, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{
		CategoryName:        "Electronics",
		CategoryDescription: ptr("Dispositivos y accesorios"),
		Attributes: []dto.CreateCategoryAttributeRequest{
			{AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: dtString},
			{AttributeName: "voltaje", AttributeDisplayName: "Voltaje (V)", DataTypeID: dtInteger, DefaultValue: ptr("110")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotZero(t, out.CategoryID)
	assert.True(t, out.IsActive, "una categoría nueva nace activa")
	require.Len(t, out.Attributes, 2)
	assert.Equal(t, "color", out.Attributes[0].AttributeName)
	assert.Equal(t, out.CategoryID, out.Attributes[0].CategoryID,
		"los atributos iniciales deben quedar atados a la categoría recién creada")
	assert.Equal(t, ptr("110"), out.Attributes[1].DefaultValue)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	fx := newFixture()
	_, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Electronics"})
	require.NoError(t, err)

	_, err = fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Electronics"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryCreate_AtributoRepetidoEnLaPeticion(t *testing.T) {
	fx := newFixture()
	_, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{
		CategoryName: "Electronics",
		Attributes: []dto.CreateCategoryAttributeRequest{
			{AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: dtString},
			{AttributeName: "color", AttributeDisplayName: "Color otra vez", DataTypeID: dtString},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, fx.categories.items, "nada debe persistirse si un atributo inicial es inválido")
}

func TestCategoryCreate_DefaultValueNoParsea(t *testing.T) {
	fx := newFixture()
	_, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{
		CategoryName: "Electronics",
		Attributes: []dto.CreateCategoryAttributeRequest{
			{AttributeName: "voltaje", AttributeDisplayName: "Voltaje", DataTypeID: dtInteger, DefaultValue: ptr("ciento diez")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var valueErr *domain.AttributeValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "voltaje", valueErr.AttributeName)
}

func TestCategoryCreate_TipoDeDatoInexistente(t *testing.T) {
	fx := newFixture()
	_, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{
		CategoryName: "Electronics",
		Attributes: []dto.CreateCategoryAttributeRequest{
			{AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: 99},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDataTypeNotFound)
}

func TestCategoryUpdate_ParcialYRenombre(t *testing.T) {
	fx := newFixture()
	created, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{
		CategoryName:        "Electronics",
		CategoryDescription: ptr("original"),
	})
	require.NoError(t, err)

	// Solo nombre: la descripción no se toca.
	ok, err := fx.categoryUC.Update(created.CategoryID, dto.UpdateCategoryRequest{
		CategoryName: ptr("Electrónica"),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := fx.categoryUC.GetByID(created.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Electrónica", got.CategoryName)
	assert.Equal(t, ptr("original"), got.CategoryDescription,
		"un campo ausente en la petición no debe cambiar")
}

func TestCategoryUpdate_RenombreANombreTomado(t *testing.T) {
	fx := newFixture()
	_, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Electronics"})
	require.NoError(t, err)
	second, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Hogar"})
	require.NoError(t, err)

	_, err = fx.categoryUC.Update(second.CategoryID, dto.UpdateCategoryRequest{
		CategoryName: ptr("Electronics"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_Inexistente(t *testing.T) {
	fx := newFixture()
	ok, err := fx.categoryUC.Update(123, dto.UpdateCategoryRequest{CategoryName: ptr("x")})
	require.NoError(t, err)
	assert.False(t, ok)
}

// Retirar y restaurar solo mueve IsActive y ModifiedDate; el resto de campos
// debe sobrevivir intacto al ciclo completo.
func TestCategoryRetireRestore_PreservaCampos(t *testing.T) {
	fx := newFixture()
	created, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{
		CategoryName:        "Electronics",
		CategoryDescription: ptr("Dispositivos"),
	})
	require.NoError(t, err)

	ok, err := fx.categoryUC.Retire(created.CategoryID)
	require.NoError(t, err)
	require.True(t, ok)

	retired, err := fx.categoryUC.GetByID(created.CategoryID)
	require.NoError(t, err)
	assert.False(t, retired.IsActive)

	ok, err = fx.categoryUC.Restore(created.CategoryID)
	require.NoError(t, err)
	require.True(t, ok)

	restored, err := fx.categoryUC.GetByID(created.CategoryID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
	assert.Equal(t, created.CategoryName, restored.CategoryName)
	assert.Equal(t, created.CategoryDescription, restored.CategoryDescription)
	assert.Equal(t, created.CreatedDate, restored.CreatedDate)
}

func TestCategoryList_SoloActivas_GetIgnoraElFlag(t *testing.T) {
	fx := newFixture()
	first, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Electronics"})
	require.NoError(t, err)
	_, err = fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Hogar"})
	require.NoError(t, err)

	_, err = fx.categoryUC.Retire(first.CategoryID)
	require.NoError(t, err)

	list, err := fx.categoryUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "el listado solo incluye categorías activas")
	assert.Equal(t, "Hogar", list[0].CategoryName)

	got, err := fx.categoryUC.GetByID(first.CategoryID)
	require.NoError(t, err)
	require.NotNil(t, got, "la lectura por ID devuelve también las retiradas")
	assert.False(t, got.IsActive)
}

// ──────────────────────────────────────────────────────────────────────────────
// Definiciones de atributo
// ──────────────────────────────────────────────────────────────────────────────

func TestAddAttribute_UnicidadPorCategoria(t *testing.T) {
	fx := newFixture()
	electronics, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Electronics"})
	require.NoError(t, err)
	clothing, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Ropa"})
	require.NoError(t, err)

	_, err = fx.categoryUC.AddAttribute(electronics.CategoryID, dto.CreateCategoryAttributeRequest{
		AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: dtString,
	})
	require.NoError(t, err)

	// Mismo nombre en la misma categoría: conflicto.
	_, err = fx.categoryUC.AddAttribute(electronics.CategoryID, dto.CreateCategoryAttributeRequest{
		AttributeName: "color", AttributeDisplayName: "Color 2", DataTypeID: dtString,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Mismo nombre en otra categoría: válido, la unicidad es por categoría.
	out, err := fx.categoryUC.AddAttribute(clothing.CategoryID, dto.CreateCategoryAttributeRequest{
		AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: dtString,
	})
	require.NoError(t, err)
	assert.Equal(t, clothing.CategoryID, out.CategoryID)
}

func TestAddAttribute_CategoriaInexistente(t *testing.T) {
	fx := newFixture()
	_, err := fx.categoryUC.AddAttribute(42, dto.CreateCategoryAttributeRequest{
		AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: dtString,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Renombrar un atributo inexistente o retirado es un no-op que devuelve false.
func TestUpdateAttribute_InexistenteOInactivo(t *testing.T) {
	fx := newFixture()
	category, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Electronics"})
	require.NoError(t, err)
	attr, err := fx.categoryUC.AddAttribute(category.CategoryID, dto.CreateCategoryAttributeRequest{
		AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: dtString,
	})
	require.NoError(t, err)

	ok, err := fx.categoryUC.UpdateAttribute(999, dto.UpdateCategoryAttributeRequest{AttributeName: ptr("x")})
	require.NoError(t, err)
	assert.False(t, ok, "atributo inexistente")

	_, err = fx.categoryUC.RetireAttribute(attr.AttributeID)
	require.NoError(t, err)

	ok, err = fx.categoryUC.UpdateAttribute(attr.AttributeID, dto.UpdateCategoryAttributeRequest{
		AttributeName: ptr("tono"),
	})
	require.NoError(t, err)
	assert.False(t, ok, "un atributo retirado no se renombra")

	stored := fx.attrs.items[attr.AttributeID]
	assert.Equal(t, "color", stored.AttributeName, "el no-op no debe mutar la fila")
}

func TestUpdateAttribute_RenombreANombreTomado(t *testing.T) {
	fx := newFixture()
	category, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Electronics"})
	require.NoError(t, err)
	_, err = fx.categoryUC.AddAttribute(category.CategoryID, dto.CreateCategoryAttributeRequest{
		AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: dtString,
	})
	require.NoError(t, err)
	second, err := fx.categoryUC.AddAttribute(category.CategoryID, dto.CreateCategoryAttributeRequest{
		AttributeName: "talla", AttributeDisplayName: "Talla", DataTypeID: dtString,
	})
	require.NoError(t, err)

	_, err = fx.categoryUC.UpdateAttribute(second.AttributeID, dto.UpdateCategoryAttributeRequest{
		AttributeName: ptr("color"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// GetByID de la categoría incluye también los atributos retirados: el
// administrador necesita verlos para poder restaurarlos.
func TestCategoryGetByID_IncluyeAtributosRetirados(t *testing.T) {
	fx := newFixture()
	category, err := fx.categoryUC.Create(context.Background(), dto.CreateCategoryRequest{CategoryName: "Electronics"})
	require.NoError(t, err)
	attr, err := fx.categoryUC.AddAttribute(category.CategoryID, dto.CreateCategoryAttributeRequest{
		AttributeName: "color", AttributeDisplayName: "Color", DataTypeID: dtString,
	})
	require.NoError(t, err)

	ok, err := fx.categoryUC.RetireAttribute(attr.AttributeID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := fx.categoryUC.GetByID(category.CategoryID)
	require.NoError(t, err)
	require.Len(t, got.Attributes, 1)
	assert.False(t, got.Attributes[0].IsActive)

	ok, err = fx.categoryUC.RestoreAttribute(attr.AttributeID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err = fx.categoryUC.GetByID(category.CategoryID)
	require.NoError(t, err)
	assert.True(t, got.Attributes[0].IsActive)
}
