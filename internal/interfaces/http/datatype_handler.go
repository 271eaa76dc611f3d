package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalog-pro/internal/application/usecase"
)

// DataTypeHandler expone el registro de tipos de dato.
type DataTypeHandler struct {
	uc *usecase.DataTypeUseCase
}

// NewDataTypeHandler construye el handler.
func NewDataTypeHandler(uc *usecase.DataTypeUseCase) *DataTypeHandler {
	return &DataTypeHandler{uc: uc}
}

// List godoc
// @Summary      Listar tipos de dato del registro
// @Tags         datatypes
// @Produce      json
// @Success      200  {array}  dto.DataTypeResponse
// @Router       /api/datatypes [get]
func (h *DataTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
