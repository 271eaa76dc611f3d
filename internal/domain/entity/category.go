package entity

import "time"

// Category agrupa productos y es dueña de sus definiciones de atributo.
// El borrado es lógico (IsActive=false); nunca se elimina físicamente.
type Category struct {
	CategoryID          int
	CategoryName        string
	CategoryDescription *string
	IsActive            bool
	CreatedDate         time.Time
	ModifiedDate        time.Time
}

// CategoryDetails es el modelo de lectura de una categoría con todas sus
// definiciones de atributo (activas e inactivas), resuelto por joins en la
// capa de persistencia; las entidades no cargan punteros de navegación.
type CategoryDetails struct {
	Category
	Attributes []CategoryAttribute
}
