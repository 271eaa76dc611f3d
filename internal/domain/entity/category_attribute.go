package entity

import "time"

// CategoryAttribute es la definición tipada de un campo dinámico dentro de una
// categoría. AttributeName es único por categoría; CategoryID y DataTypeID son
// inmutables tras la creación (cambiar el tipo con valores existentes es
// inseguro). El borrado es lógico: las filas de valor lo referencian.
type CategoryAttribute struct {
	AttributeID          int
	CategoryID           int
	AttributeName        string
	AttributeDisplayName string
	DataTypeID           int
	DefaultValue         *string
	IsActive             bool
	CreatedDate          time.Time
	ModifiedDate         time.Time
}
