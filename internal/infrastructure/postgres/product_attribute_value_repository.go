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

var _ repository.ProductAttributeValueRepository = (*ProductAttributeValueRepo)(nil)

// ProductAttributeValueRepo implementación del puerto
// ProductAttributeValueRepository sobre PostgreSQL (usable con pool o tx).
type ProductAttributeValueRepo struct {
	q Querier
}

// NewProductAttributeValueRepository construye el adaptador de persistencia
// para filas de valor (producto, atributo).
func NewProductAttributeValueRepository(q Querier) *ProductAttributeValueRepo {
	return &ProductAttributeValueRepo{q: q}
}

// Create persiste una nueva fila de valor y asigna el ID generado. La
// constraint UNIQUE (product_id, attribute_id) convierte una carrera perdida
// del upsert en ErrDuplicate en lugar de una fila duplicada.
func (r *ProductAttributeValueRepo) Create(value *entity.ProductAttributeValue) error {
	query := `
		INSERT INTO product_attribute_values (product_id, attribute_id, attribute_value, created_date, modified_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING product_attribute_id`
	err := r.q.QueryRow(context.Background(), query,
		value.ProductID, value.AttributeID, value.AttributeValue,
		value.CreatedDate, value.ModifiedDate,
	).Scan(&value.ProductAttributeID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product attribute value: %w", err)
	}
	return nil
}

// GetByProductAndAttribute obtiene la fila de valor de un par (producto,
// atributo). Es la lectura fresca sobre la que decide el upsert.
func (r *ProductAttributeValueRepo) GetByProductAndAttribute(productID, attributeID int) (*entity.ProductAttributeValue, error) {
	query := `
		SELECT product_attribute_id, product_id, attribute_id, attribute_value, created_date, modified_date
		FROM product_attribute_values WHERE product_id = $1 AND attribute_id = $2`
	var v entity.ProductAttributeValue
	err := r.q.QueryRow(context.Background(), query, productID, attributeID).Scan(
		&v.ProductAttributeID, &v.ProductID, &v.AttributeID, &v.AttributeValue,
		&v.CreatedDate, &v.ModifiedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product attribute value: %w", err)
	}
	return &v, nil
}

// GetDetail obtiene la fila de valor confirmada junto con los metadatos de su
// definición (nombre, etiqueta y tipo de dato).
func (r *ProductAttributeValueRepo) GetDetail(productID, attributeID int) (*entity.ProductAttributeDetail, error) {
	query := `
		SELECT pav.product_attribute_id, pav.attribute_id, ca.attribute_name,
		       ca.attribute_display_name, adt.data_type_name, pav.attribute_value
		FROM product_attribute_values pav
		JOIN category_attributes ca ON ca.attribute_id = pav.attribute_id
		JOIN attribute_data_types adt ON adt.data_type_id = ca.data_type_id
		WHERE pav.product_id = $1 AND pav.attribute_id = $2`
	var d entity.ProductAttributeDetail
	err := r.q.QueryRow(context.Background(), query, productID, attributeID).Scan(
		&d.ProductAttributeID, &d.AttributeID, &d.AttributeName,
		&d.AttributeDisplayName, &d.DataTypeName, &d.AttributeValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product attribute value detail: %w", err)
	}
	return &d, nil
}

// Update actualiza el valor y la fecha de modificación en sitio.
func (r *ProductAttributeValueRepo) Update(value *entity.ProductAttributeValue) error {
	query := `
		UPDATE product_attribute_values SET attribute_value = $2, modified_date = $3
		WHERE product_attribute_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		value.ProductAttributeID, value.AttributeValue, value.ModifiedDate,
	)
	if err != nil {
		return fmt.Errorf("update product attribute value: %w", err)
	}
	return nil
}

// Delete elimina físicamente una fila de valor (el único borrado duro del modelo).
func (r *ProductAttributeValueRepo) Delete(productAttributeID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM product_attribute_values WHERE product_attribute_id = $1`,
		productAttributeID,
	)
	if err != nil {
		return fmt.Errorf("delete product attribute value: %w", err)
	}
	return nil
}
