package entity

import "time"

// AttributeDataType es un tipo de dato escalar del registro cerrado
// (STRING, INTEGER, DECIMAL, BOOLEAN, DATE, JSON). Se siembra una vez y
// nunca se elimina físicamente: las definiciones de atributo lo referencian.
type AttributeDataType struct {
	DataTypeID   int
	DataTypeName string
	IsActive     bool
	CreatedDate  time.Time
}
