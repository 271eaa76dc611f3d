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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL
// (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría y asigna el ID generado.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (category_name, category_description, is_active, created_date, modified_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING category_id`
	err := r.q.QueryRow(context.Background(), query,
		category.CategoryName, category.CategoryDescription, category.IsActive,
		category.CreatedDate, category.ModifiedDate,
	).Scan(&category.CategoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID, activa o no.
func (r *CategoryRepo) GetByID(id int) (*entity.Category, error) {
	query := `
		SELECT category_id, category_name, category_description, is_active, created_date, modified_date
		FROM categories WHERE category_id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.CategoryID, &c.CategoryName, &c.CategoryDescription, &c.IsActive,
		&c.CreatedDate, &c.ModifiedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una categoría por nombre (para el pre-chequeo de unicidad).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `
		SELECT category_id, category_name, category_description, is_active, created_date, modified_date
		FROM categories WHERE category_name = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&c.CategoryID, &c.CategoryName, &c.CategoryDescription, &c.IsActive,
		&c.CreatedDate, &c.ModifiedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// GetDetails obtiene una categoría con todas sus definiciones de atributo,
// activas e inactivas. Ignora el flag IsActive de la propia categoría.
func (r *CategoryRepo) GetDetails(id int) (*entity.CategoryDetails, error) {
	category, err := r.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	attributes, err := r.attributesFor([]int{id})
	if err != nil {
		return nil, err
	}
	return &entity.CategoryDetails{Category: *category, Attributes: attributes[id]}, nil
}

// ListActiveDetails lista las categorías activas con sus definiciones de atributo.
func (r *CategoryRepo) ListActiveDetails() ([]*entity.CategoryDetails, error) {
	query := `
		SELECT category_id, category_name, category_description, is_active, created_date, modified_date
		FROM categories WHERE is_active ORDER BY category_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoryDetails
	var ids []int
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.CategoryID, &c.CategoryName, &c.CategoryDescription, &c.IsActive,
			&c.CreatedDate, &c.ModifiedDate); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &entity.CategoryDetails{Category: c})
		ids = append(ids, c.CategoryID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	attributes, err := r.attributesFor(ids)
	if err != nil {
		return nil, err
	}
	for _, cd := range list {
		cd.Attributes = attributes[cd.CategoryID]
	}
	return list, nil
}

// Update actualiza nombre, descripción, flag y fecha de modificación.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories
		SET category_name = $2, category_description = $3, is_active = $4, modified_date = $5
		WHERE category_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.CategoryID, category.CategoryName, category.CategoryDescription,
		category.IsActive, category.ModifiedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// attributesFor carga las definiciones de atributo de varias categorías en una
// sola consulta y las agrupa por category_id.
func (r *CategoryRepo) attributesFor(categoryIDs []int) (map[int][]entity.CategoryAttribute, error) {
	query := `
		SELECT attribute_id, category_id, attribute_name, attribute_display_name,
		       data_type_id, default_value, is_active, created_date, modified_date
		FROM category_attributes WHERE category_id = ANY($1) ORDER BY attribute_name`
	rows, err := r.q.Query(context.Background(), query, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("list category attributes: %w", err)
	}
	defer rows.Close()
	grouped := make(map[int][]entity.CategoryAttribute, len(categoryIDs))
	for rows.Next() {
		var a entity.CategoryAttribute
		if err := rows.Scan(&a.AttributeID, &a.CategoryID, &a.AttributeName, &a.AttributeDisplayName,
			&a.DataTypeID, &a.DefaultValue, &a.IsActive, &a.CreatedDate, &a.ModifiedDate); err != nil {
			return nil, fmt.Errorf("scan category attribute: %w", err)
		}
		grouped[a.CategoryID] = append(grouped[a.CategoryID], a)
	}
	return grouped, rows.Err()
}
