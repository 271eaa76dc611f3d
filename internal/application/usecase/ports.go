package usecase

import (
	"context"

	"github.com/tu-usuario/catalog-pro/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción
// (unidad de trabajo). Las creaciones con hijos iniciales (categoría con
// atributos, producto con valores) confirman todas sus filas o ninguna.
type TxRunner interface {
	RunCategory(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		attributeRepo repository.CategoryAttributeRepository,
	) error) error

	RunProduct(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		valueRepo repository.ProductAttributeValueRepository,
	) error) error
}
