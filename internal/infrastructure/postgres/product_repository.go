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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `product_id, category_id, product_sku, product_name, product_description,
	brand, sale_price, cost_price, stock_quantity, is_active, created_date, modified_date`

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products
			(category_id, product_sku, product_name, product_description, brand,
			 sale_price, cost_price, stock_quantity, is_active, created_date, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING product_id`
	err := r.q.QueryRow(context.Background(), query,
		product.CategoryID, product.ProductSKU, product.ProductName, product.ProductDescription,
		product.Brand, product.SalePrice, product.CostPrice, product.StockQuantity,
		product.IsActive, product.CreatedDate, product.ModifiedDate,
	).Scan(&product.ProductID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, activo o no.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	return r.getOne(query, id)
}

// GetBySKU obtiene un producto por SKU (para el pre-chequeo de unicidad).
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_sku = $1`
	return r.getOne(query, sku)
}

// GetDetails obtiene el modelo hidratado de un producto: la fila del producto,
// el nombre de su categoría y el detalle de todos sus valores de atributo.
func (r *ProductRepo) GetDetails(id int) (*entity.ProductDetails, error) {
	query := `
		SELECT ` + prefixedProductColumns + `, c.category_name
		FROM products p JOIN categories c ON c.category_id = p.category_id
		WHERE p.product_id = $1`
	var d entity.ProductDetails
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ProductID, &d.CategoryID, &d.ProductSKU, &d.ProductName, &d.ProductDescription,
		&d.Brand, &d.SalePrice, &d.CostPrice, &d.StockQuantity, &d.IsActive,
		&d.CreatedDate, &d.ModifiedDate, &d.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product details: %w", err)
	}
	values, err := r.valuesFor([]int{id})
	if err != nil {
		return nil, err
	}
	d.Attributes = values[id]
	return &d, nil
}

// ListActiveDetails lista los productos activos hidratados (categoría y valores).
func (r *ProductRepo) ListActiveDetails() ([]*entity.ProductDetails, error) {
	query := `
		SELECT ` + prefixedProductColumns + `, c.category_name
		FROM products p JOIN categories c ON c.category_id = p.category_id
		WHERE p.is_active ORDER BY p.created_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductDetails
	var ids []int
	for rows.Next() {
		var d entity.ProductDetails
		if err := rows.Scan(&d.ProductID, &d.CategoryID, &d.ProductSKU, &d.ProductName, &d.ProductDescription,
			&d.Brand, &d.SalePrice, &d.CostPrice, &d.StockQuantity, &d.IsActive,
			&d.CreatedDate, &d.ModifiedDate, &d.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &d)
		ids = append(ids, d.ProductID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	values, err := r.valuesFor(ids)
	if err != nil {
		return nil, err
	}
	for _, d := range list {
		d.Attributes = values[d.ProductID]
	}
	return list, nil
}

// Update actualiza los campos editables del producto. CategoryID es inmutable
// en este contrato y no se toca.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET product_sku = $2, product_name = $3, product_description = $4, brand = $5,
		    sale_price = $6, cost_price = $7, stock_quantity = $8, is_active = $9, modified_date = $10
		WHERE product_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ProductID, product.ProductSKU, product.ProductName, product.ProductDescription,
		product.Brand, product.SalePrice, product.CostPrice, product.StockQuantity,
		product.IsActive, product.ModifiedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

const prefixedProductColumns = `p.product_id, p.category_id, p.product_sku, p.product_name, p.product_description,
	p.brand, p.sale_price, p.cost_price, p.stock_quantity, p.is_active, p.created_date, p.modified_date`

// valuesFor carga el detalle de valores de varios productos en una sola
// consulta y lo agrupa por product_id.
func (r *ProductRepo) valuesFor(productIDs []int) (map[int][]entity.ProductAttributeDetail, error) {
	query := `
		SELECT pav.product_id, pav.product_attribute_id, pav.attribute_id,
		       ca.attribute_name, ca.attribute_display_name, adt.data_type_name, pav.attribute_value
		FROM product_attribute_values pav
		JOIN category_attributes ca ON ca.attribute_id = pav.attribute_id
		JOIN attribute_data_types adt ON adt.data_type_id = ca.data_type_id
		WHERE pav.product_id = ANY($1)
		ORDER BY ca.attribute_name`
	rows, err := r.q.Query(context.Background(), query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list product attribute values: %w", err)
	}
	defer rows.Close()
	grouped := make(map[int][]entity.ProductAttributeDetail, len(productIDs))
	for rows.Next() {
		var productID int
		var d entity.ProductAttributeDetail
		if err := rows.Scan(&productID, &d.ProductAttributeID, &d.AttributeID,
			&d.AttributeName, &d.AttributeDisplayName, &d.DataTypeName, &d.AttributeValue); err != nil {
			return nil, fmt.Errorf("scan product attribute value: %w", err)
		}
		grouped[productID] = append(grouped[productID], d)
	}
	return grouped, rows.Err()
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ProductID, &p.CategoryID, &p.ProductSKU, &p.ProductName, &p.ProductDescription,
		&p.Brand, &p.SalePrice, &p.CostPrice, &p.StockQuantity, &p.IsActive,
		&p.CreatedDate, &p.ModifiedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
