package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalog-pro/internal/domain"
	"github.com/tu-usuario/catalog-pro/internal/domain/entity"
	"github.com/tu-usuario/catalog-pro/internal/domain/repository"
)

var _ repository.CategoryAttributeRepository = (*CategoryAttributeRepo)(nil)

// CategoryAttributeRepo implementación del puerto CategoryAttributeRepository
// sobre PostgreSQL (usable con pool o tx).
type CategoryAttributeRepo struct {
	q Querier
}

// NewCategoryAttributeRepository construye el adaptador de persistencia para
// definiciones de atributo.
func NewCategoryAttributeRepository(q Querier) *CategoryAttributeRepo {
	return &CategoryAttributeRepo{q: q}
}

const categoryAttributeColumns = `attribute_id, category_id, attribute_name, attribute_display_name,
	data_type_id, default_value, is_active, created_date, modified_date`

// Create persiste una nueva definición de atributo y asigna el ID generado.
// La constraint UNIQUE (category_id, attribute_name) respalda el pre-chequeo
// de la capa de aplicación.
func (r *CategoryAttributeRepo) Create(attribute *entity.CategoryAttribute) error {
	query := `
		INSERT INTO category_attributes
			(category_id, attribute_name, attribute_display_name, data_type_id, default_value, is_active, created_date, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING attribute_id`
	err := r.q.QueryRow(context.Background(), query,
		attribute.CategoryID, attribute.AttributeName, attribute.AttributeDisplayName,
		attribute.DataTypeID, attribute.DefaultValue, attribute.IsActive,
		attribute.CreatedDate, attribute.ModifiedDate,
	).Scan(&attribute.AttributeID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category attribute: %w", err)
	}
	return nil
}

// GetByID obtiene una definición de atributo por ID, activa o no.
func (r *CategoryAttributeRepo) GetByID(id int) (*entity.CategoryAttribute, error) {
	query := `SELECT ` + categoryAttributeColumns + ` FROM category_attributes WHERE attribute_id = $1`
	return r.getOne(query, id)
}

// GetByCategoryAndName obtiene una definición por (categoría, nombre) para el
// pre-chequeo de unicidad por categoría.
func (r *CategoryAttributeRepo) GetByCategoryAndName(categoryID int, name string) (*entity.CategoryAttribute, error) {
	query := `SELECT ` + categoryAttributeColumns + ` FROM category_attributes
		WHERE category_id = $1 AND attribute_name = $2`
	return r.getOne(query, categoryID, name)
}

// ListByCategory lista todas las definiciones de una categoría, activas e inactivas.
func (r *CategoryAttributeRepo) ListByCategory(categoryID int) ([]*entity.CategoryAttribute, error) {
	query := `SELECT ` + categoryAttributeColumns + ` FROM category_attributes
		WHERE category_id = $1 ORDER BY attribute_name`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list category attributes: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoryAttribute
	for rows.Next() {
		var a entity.CategoryAttribute
		if err := rows.Scan(&a.AttributeID, &a.CategoryID, &a.AttributeName, &a.AttributeDisplayName,
			&a.DataTypeID, &a.DefaultValue, &a.IsActive, &a.CreatedDate, &a.ModifiedDate); err != nil {
			return nil, fmt.Errorf("scan category attribute: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza nombre, etiqueta, valor por defecto, flag y fecha de
// modificación. CategoryID y DataTypeID son inmutables y no se tocan.
func (r *CategoryAttributeRepo) Update(attribute *entity.CategoryAttribute) error {
	query := `
		UPDATE category_attributes
		SET attribute_name = $2, attribute_display_name = $3, default_value = $4, is_active = $5, modified_date = $6
		WHERE attribute_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		attribute.AttributeID, attribute.AttributeName, attribute.AttributeDisplayName,
		attribute.DefaultValue, attribute.IsActive, attribute.ModifiedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category attribute: %w", err)
	}
	return nil
}

func (r *CategoryAttributeRepo) getOne(query string, args ...any) (*entity.CategoryAttribute, error) {
	var a entity.CategoryAttribute
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&a.AttributeID, &a.CategoryID, &a.AttributeName, &a.AttributeDisplayName,
		&a.DataTypeID, &a.DefaultValue, &a.IsActive, &a.CreatedDate, &a.ModifiedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category attribute: %w", err)
	}
	return &a, nil
}
