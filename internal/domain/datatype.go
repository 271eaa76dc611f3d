package domain

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Nombres del registro cerrado de tipos de dato escalares.
// Los atributos de categoría declaran uno de estos y los valores de producto
// se almacenan como texto que debe parsear bajo el tipo declarado.
const (
	DataTypeString  = "STRING"
	DataTypeInteger = "INTEGER"
	DataTypeDecimal = "DECIMAL"
	DataTypeBoolean = "BOOLEAN"
	DataTypeDate    = "DATE"
	DataTypeJSON    = "JSON"
)

// ValidateValue verifica que value parsee bajo el tipo de dato declarado.
// Un value nil siempre es válido (el atributo simplemente no tiene valor).
// Devuelve *AttributeValueError nombrando el atributo si no cumple.
//
// Reglas léxicas:
//   - STRING:  cualquier texto
//   - INTEGER: entero de 64 bits en base 10
//   - DECIMAL: decimal arbitrario (shopspring)
//   - BOOLEAN: literales "true" o "false"
//   - DATE:    ISO-8601, "2006-01-02" o RFC 3339 completo
//   - JSON:    documento JSON sintácticamente válido
func ValidateValue(attributeName, dataTypeName string, value *string) error {
	if value == nil {
		return nil
	}
	v := *value
	ok := false
	switch dataTypeName {
	case DataTypeString:
		ok = true
	case DataTypeInteger:
		_, err := strconv.ParseInt(v, 10, 64)
		ok = err == nil
	case DataTypeDecimal:
		_, err := decimal.NewFromString(v)
		ok = err == nil
	case DataTypeBoolean:
		ok = v == "true" || v == "false"
	case DataTypeDate:
		if _, err := time.Parse("2006-01-02", v); err == nil {
			ok = true
		} else if _, err := time.Parse(time.RFC3339, v); err == nil {
			ok = true
		}
	case DataTypeJSON:
		ok = json.Valid([]byte(v))
	}
	if !ok {
		return &AttributeValueError{AttributeName: attributeName, DataTypeName: dataTypeName, Value: v}
	}
	return nil
}
