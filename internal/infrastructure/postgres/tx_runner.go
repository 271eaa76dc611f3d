package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/catalog-pro/internal/application/usecase"
	"github.com/tu-usuario/catalog-pro/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL (unidad de
// trabajo): o se confirman todas las filas de la operación o ninguna.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCategory inicia una transacción con repos de categoría y definiciones de
// atributo (crear categoría con atributos iniciales) y hace Commit o Rollback.
func (r *TxRunner) RunCategory(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	attributeRepo repository.CategoryAttributeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categoryRepo := NewCategoryRepository(tx)
	attributeRepo := NewCategoryAttributeRepository(tx)

	if err := fn(categoryRepo, attributeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProduct inicia una transacción con repos de producto y valores de
// atributo (crear producto con valores iniciales) y hace Commit o Rollback.
func (r *TxRunner) RunProduct(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	valueRepo repository.ProductAttributeValueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	valueRepo := NewProductAttributeValueRepository(tx)

	if err := fn(productRepo, valueRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
