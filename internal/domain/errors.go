package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrCategoryNotFound       = errors.New("la categoría no existe")
	ErrDataTypeNotFound       = errors.New("el tipo de dato no existe")
	ErrAttributeNotFound      = errors.New("el atributo no existe")
	ErrAttributeNotInCategory = errors.New("el atributo no pertenece a la categoría del producto")
)

// AttributeValueError indica que un valor no cumple el tipo de dato declarado
// por su atributo. Siempre nombra el atributo ofensor.
type AttributeValueError struct {
	AttributeName string
	DataTypeName  string
	Value         string
}

func (e *AttributeValueError) Error() string {
	return fmt.Sprintf("atributo %q: el valor %q no es un %s válido", e.AttributeName, e.Value, e.DataTypeName)
}

// Unwrap permite tratar el error como ErrInvalidInput con errors.Is.
func (e *AttributeValueError) Unwrap() error {
	return ErrInvalidInput
}
