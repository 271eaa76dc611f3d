package dto

import "time"

// CreateCategoryAttributeRequest entrada para definir un atributo tipado.
type CreateCategoryAttributeRequest struct {
	AttributeName        string  `json:"attributeName" validate:"required,min=1,max=100"`
	AttributeDisplayName string  `json:"attributeDisplayName" validate:"required,min=1,max=100"`
	DataTypeID           int     `json:"dataTypeId" validate:"required,gt=0"`
	DefaultValue         *string `json:"defaultValue" validate:"omitempty,max=500"`
}

// UpdateCategoryAttributeRequest entrada para renombrar un atributo. Solo los
// campos presentes cambian; el tipo de dato es inmutable.
type UpdateCategoryAttributeRequest struct {
	AttributeName        *string `json:"attributeName" validate:"omitempty,min=1,max=100"`
	AttributeDisplayName *string `json:"attributeDisplayName" validate:"omitempty,min=1,max=100"`
}

// CategoryAttributeResponse salida de una definición de atributo.
type CategoryAttributeResponse struct {
	AttributeID          int       `json:"attributeId"`
	CategoryID           int       `json:"categoryId"`
	AttributeName        string    `json:"attributeName"`
	AttributeDisplayName string    `json:"attributeDisplayName"`
	DataTypeID           int       `json:"dataTypeId"`
	DefaultValue         *string   `json:"defaultValue,omitempty"`
	IsActive             bool      `json:"isActive"`
	CreatedDate          time.Time `json:"createdDate"`
	ModifiedDate         time.Time `json:"modifiedDate"`
}

// CreateCategoryRequest entrada para crear una categoría, opcionalmente con
// sus atributos iniciales (se crean atómicamente con la categoría).
type CreateCategoryRequest struct {
	CategoryName        string                           `json:"categoryName" validate:"required,min=1,max=100"`
	CategoryDescription *string                          `json:"categoryDescription" validate:"omitempty,max=500"`
	Attributes          []CreateCategoryAttributeRequest `json:"attributes" validate:"omitempty,dive"`
}

// UpdateCategoryRequest entrada para actualización parcial: un campo ausente
// es no-op, no un borrado.
type UpdateCategoryRequest struct {
	CategoryName        *string `json:"categoryName" validate:"omitempty,min=1,max=100"`
	CategoryDescription *string `json:"categoryDescription" validate:"omitempty,max=500"`
}

// CategoryResponse salida de una categoría con todas sus definiciones de
// atributo (activas e inactivas).
type CategoryResponse struct {
	CategoryID          int                         `json:"categoryId"`
	CategoryName        string                      `json:"categoryName"`
	CategoryDescription *string                     `json:"categoryDescription,omitempty"`
	IsActive            bool                        `json:"isActive"`
	CreatedDate         time.Time                   `json:"createdDate"`
	ModifiedDate        time.Time                   `json:"modifiedDate"`
	Attributes          []CategoryAttributeResponse `json:"attributes"`
}
