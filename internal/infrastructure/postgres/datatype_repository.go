package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalog-pro/internal/domain/entity"
	"github.com/tu-usuario/catalog-pro/internal/domain/repository"
)

var _ repository.DataTypeRepository = (*DataTypeRepo)(nil)

// DataTypeRepo implementación del puerto DataTypeRepository sobre PostgreSQL.
type DataTypeRepo struct {
	q Querier
}

// NewDataTypeRepository construye el adaptador de persistencia para el
// registro de tipos de dato. Pasar pool o tx (Querier).
func NewDataTypeRepository(q Querier) *DataTypeRepo {
	return &DataTypeRepo{q: q}
}

// List devuelve el registro completo de tipos de dato.
func (r *DataTypeRepo) List() ([]*entity.AttributeDataType, error) {
	query := `
		SELECT data_type_id, data_type_name, is_active, created_date
		FROM attribute_data_types ORDER BY data_type_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list data types: %w", err)
	}
	defer rows.Close()
	var list []*entity.AttributeDataType
	for rows.Next() {
		var dt entity.AttributeDataType
		if err := rows.Scan(&dt.DataTypeID, &dt.DataTypeName, &dt.IsActive, &dt.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan data type: %w", err)
		}
		list = append(list, &dt)
	}
	return list, rows.Err()
}

// GetByID obtiene un tipo de dato por ID.
func (r *DataTypeRepo) GetByID(id int) (*entity.AttributeDataType, error) {
	query := `
		SELECT data_type_id, data_type_name, is_active, created_date
		FROM attribute_data_types WHERE data_type_id = $1`
	var dt entity.AttributeDataType
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&dt.DataTypeID, &dt.DataTypeName, &dt.IsActive, &dt.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get data type: %w", err)
	}
	return &dt, nil
}
