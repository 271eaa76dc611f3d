package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product pertenece a exactamente una categoría (asociación inmutable en la
// API actual). Los precios son decimales de punto fijo (18,4). El borrado es
// lógico (IsActive=false).
type Product struct {
	ProductID          int
	CategoryID         int
	ProductSKU         string
	ProductName        string
	ProductDescription *string
	Brand              *string
	SalePrice          decimal.Decimal
	CostPrice          *decimal.Decimal
	StockQuantity      int
	IsActive           bool
	CreatedDate        time.Time
	ModifiedDate       time.Time
}

// ProductDetails es el modelo de lectura hidratado de un producto: nombre de
// la categoría y detalle de sus valores de atributo, resueltos por joins
// (equivalente a la vista vw_ProductsComplete del esquema).
type ProductDetails struct {
	Product
	CategoryName string
	Attributes   []ProductAttributeDetail
}

// ProductAttributeDetail es una fila de valor junto con los metadatos de su
// definición de atributo.
type ProductAttributeDetail struct {
	ProductAttributeID   int64
	AttributeID          int
	AttributeName        string
	AttributeDisplayName string
	DataTypeName         string
	AttributeValue       *string
}
