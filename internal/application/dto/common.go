package dto

import "github.com/go-playground/validator/v10"

// validate instancia única del validador de structs para los DTO de entrada.
var validate = validator.New()

// Validate aplica las reglas declaradas en los tags `validate` del DTO.
func Validate(s any) error {
	return validate.Struct(s)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
