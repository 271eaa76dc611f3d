package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductAttributeValueRequest valor para un atributo concreto, al crear
// el producto o en el upsert posterior.
type CreateProductAttributeValueRequest struct {
	AttributeID int     `json:"attributeId" validate:"required,gt=0"`
	Value       *string `json:"value" validate:"omitempty,max=200"`
}

// UpdateProductAttributeValueRequest entrada del update-only de un valor.
type UpdateProductAttributeValueRequest struct {
	Value *string `json:"value" validate:"omitempty,max=200"`
}

// ProductAttributeValueResponse salida de un valor con los metadatos de su
// definición resueltos.
type ProductAttributeValueResponse struct {
	AttributeID          int     `json:"attributeId"`
	AttributeName        string  `json:"attributeName"`
	AttributeDisplayName string  `json:"attributeDisplayName"`
	DataTypeName         string  `json:"dataTypeName"`
	Value                *string `json:"value"`
}

// CreateProductRequest entrada para crear un producto, opcionalmente con
// valores de atributo iniciales (se insertan en el mismo commit).
type CreateProductRequest struct {
	CategoryID         int                                  `json:"categoryId" validate:"required,gt=0"`
	ProductSKU         string                               `json:"productSku" validate:"required,min=1,max=50"`
	ProductName        string                               `json:"productName" validate:"required,min=1,max=200"`
	ProductDescription *string                              `json:"productDescription" validate:"omitempty,max=2000"`
	Brand              *string                              `json:"brand" validate:"omitempty,max=100"`
	SalePrice          decimal.Decimal                      `json:"salePrice"`
	CostPrice          *decimal.Decimal                     `json:"costPrice"`
	StockQuantity      int                                  `json:"stockQuantity" validate:"min=0"`
	Attributes         []CreateProductAttributeValueRequest `json:"attributes" validate:"omitempty,dive"`
}

// UpdateProductRequest entrada para actualización parcial. No permite cambiar
// la categoría.
type UpdateProductRequest struct {
	ProductSKU         *string          `json:"productSku" validate:"omitempty,min=1,max=50"`
	ProductName        *string          `json:"productName" validate:"omitempty,min=1,max=200"`
	ProductDescription *string          `json:"productDescription" validate:"omitempty,max=2000"`
	Brand              *string          `json:"brand" validate:"omitempty,max=100"`
	SalePrice          *decimal.Decimal `json:"salePrice"`
	CostPrice          *decimal.Decimal `json:"costPrice"`
	StockQuantity      *int             `json:"stockQuantity" validate:"omitempty,min=0"`
}

// ProductResponse salida hidratada de un producto: categoría y valores de
// atributo resueltos.
type ProductResponse struct {
	ProductID          int                             `json:"productId"`
	CategoryID         int                             `json:"categoryId"`
	CategoryName       string                          `json:"categoryName"`
	ProductSKU         string                          `json:"productSku"`
	ProductName        string                          `json:"productName"`
	ProductDescription *string                         `json:"productDescription,omitempty"`
	Brand              *string                         `json:"brand,omitempty"`
	SalePrice          decimal.Decimal                 `json:"salePrice"`
	CostPrice          *decimal.Decimal                `json:"costPrice,omitempty"`
	StockQuantity      int                             `json:"stockQuantity"`
	IsActive           bool                            `json:"isActive"`
	CreatedDate        time.Time                       `json:"createdDate"`
	ModifiedDate       time.Time                       `json:"modifiedDate"`
	Attributes         []ProductAttributeValueResponse `json:"attributes"`
}
