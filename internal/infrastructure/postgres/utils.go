package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reconoce la violación de una constraint UNIQUE de
// PostgreSQL (SQLSTATE 23505). Los repos la traducen a domain.ErrDuplicate:
// nombre de categoría, (categoría, atributo), SKU y par (producto, atributo).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// Algunos poolers externos reenvuelven el error y se pierde el *PgError.
	return strings.Contains(err.Error(), "23505")
}
