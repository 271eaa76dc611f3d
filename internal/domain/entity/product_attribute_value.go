package entity

import "time"

// ProductAttributeValue es el par (producto, atributo) con su valor
// serializado como texto. Hay a lo sumo una fila por par; se actualiza en
// sitio en escrituras posteriores (sin historial) y es la única entidad que
// se elimina físicamente: un valor suelto no tiene significado propio.
type ProductAttributeValue struct {
	ProductAttributeID int64
	ProductID          int
	AttributeID        int
	AttributeValue     *string
	CreatedDate        time.Time
	ModifiedDate       time.Time
}
