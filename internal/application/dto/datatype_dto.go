package dto

import "time"

// DataTypeResponse salida de un tipo de dato del registro.
type DataTypeResponse struct {
	DataTypeID   int       `json:"dataTypeId"`
	DataTypeName string    `json:"dataTypeName"`
	IsActive     bool      `json:"isActive"`
	CreatedDate  time.Time `json:"createdDate"`
}
