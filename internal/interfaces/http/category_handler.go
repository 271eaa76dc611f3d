package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/catalog-pro/internal/application/dto"
	"github.com/tu-usuario/catalog-pro/internal/application/usecase"
	"github.com/tu-usuario/catalog-pro/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP para Category y sus definiciones
// de atributo.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías activas con sus atributos
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID (activa o no)
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría (opcionalmente con atributos iniciales)
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return conflict(c, "el nombre de la categoría o de un atributo ya existe")
		case errors.Is(err, domain.ErrDataTypeNotFound):
			return badRequest(c, "DATA_TYPE", err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			return validationError(c, err)
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría (parcial)
// @Tags         categories
// @Accept       json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	ok, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return conflict(c, "el nombre de la categoría ya existe")
		}
		return internalError(c, err)
	}
	if !ok {
		return notFound(c, "categoría no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Retirar categoría (borrado lógico)
// @Tags         categories
// @Param        id  path  int  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	return h.toggle(c, h.uc.Retire)
}

// Enable godoc
// @Summary      Reactivar categoría retirada
// @Tags         categories
// @Param        id  path  int  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [patch]
func (h *CategoryHandler) Enable(c *fiber.Ctx) error {
	return h.toggle(c, h.uc.Restore)
}

func (h *CategoryHandler) toggle(c *fiber.Ctx, fn func(int) (bool, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	ok, err := fn(id)
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return notFound(c, "categoría no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddAttribute godoc
// @Summary      Definir un atributo tipado en una categoría existente
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        categoryId  path  int  true  "ID de la categoría"
// @Param        body  body  dto.CreateCategoryAttributeRequest  true  "Definición del atributo"
// @Success      201  {object}  dto.CategoryAttributeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{categoryId}/attributes [post]
func (h *CategoryHandler) AddAttribute(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil {
		return badID(c)
	}
	var in dto.CreateCategoryAttributeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.AddAttribute(categoryID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "categoría no encontrada")
		case errors.Is(err, domain.ErrDuplicate):
			return conflict(c, "el nombre del atributo ya existe en esta categoría")
		case errors.Is(err, domain.ErrDataTypeNotFound):
			return badRequest(c, "DATA_TYPE", err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			return validationError(c, err)
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateAttribute godoc
// @Summary      Renombrar atributo (parcial; solo atributos activos)
// @Tags         categories
// @Accept       json
// @Param        attributeId  path  int  true  "ID del atributo"
// @Param        body  body  dto.UpdateCategoryAttributeRequest  true  "Campos a actualizar"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/attributes/{attributeId} [put]
func (h *CategoryHandler) UpdateAttribute(c *fiber.Ctx) error {
	attributeID, err := c.ParamsInt("attributeId")
	if err != nil {
		return badID(c)
	}
	var in dto.UpdateCategoryAttributeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	ok, err := h.uc.UpdateAttribute(attributeID, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return conflict(c, "el nombre del atributo ya existe en esta categoría")
		}
		return internalError(c, err)
	}
	if !ok {
		return notFound(c, "atributo no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAttribute godoc
// @Summary      Retirar atributo (borrado lógico; los valores existentes no se tocan)
// @Tags         categories
// @Param        attributeId  path  int  true  "ID del atributo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/attributes/{attributeId} [delete]
func (h *CategoryHandler) DeleteAttribute(c *fiber.Ctx) error {
	return h.toggleAttribute(c, h.uc.RetireAttribute)
}

// EnableAttribute godoc
// @Summary      Reactivar atributo retirado
// @Tags         categories
// @Param        attributeId  path  int  true  "ID del atributo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/attributes/{attributeId} [patch]
func (h *CategoryHandler) EnableAttribute(c *fiber.Ctx) error {
	return h.toggleAttribute(c, h.uc.RestoreAttribute)
}

func (h *CategoryHandler) toggleAttribute(c *fiber.Ctx, fn func(int) (bool, error)) error {
	attributeID, err := c.ParamsInt("attributeId")
	if err != nil {
		return badID(c)
	}
	ok, err := fn(attributeID)
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return notFound(c, "atributo no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Respuestas de error comunes. Los errores inesperados nunca exponen detalles
// del almacenamiento al cliente: se registran y se responde un mensaje genérico.

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "el id debe ser un entero"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: message})
}

func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
