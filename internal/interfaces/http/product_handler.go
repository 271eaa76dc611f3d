package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalog-pro/internal/application/dto"
	"github.com/tu-usuario/catalog-pro/internal/application/usecase"
	"github.com/tu-usuario/catalog-pro/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product y sus valores de
// atributo.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos activos (hidratados: categoría y valores)
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID (activo o no)
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (opcionalmente con valores de atributo iniciales)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			return badRequest(c, "BAD_CATEGORY", err.Error())
		case errors.Is(err, domain.ErrAttributeNotFound),
			errors.Is(err, domain.ErrAttributeNotInCategory):
			return badRequest(c, "BAD_ATTRIBUTE", err.Error())
		case errors.Is(err, domain.ErrDuplicate):
			return conflict(c, "el SKU ya existe")
		case errors.Is(err, domain.ErrInvalidInput):
			return validationError(c, err)
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (parcial; la categoría es inmutable)
// @Tags         products
// @Accept       json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	ok, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return conflict(c, "el SKU ya existe")
		case errors.Is(err, domain.ErrInvalidInput):
			return validationError(c, err)
		}
		return internalError(c, err)
	}
	if !ok {
		return notFound(c, "producto no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Retirar producto (borrado lógico)
// @Tags         products
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	return h.toggle(c, h.uc.Retire)
}

// Enable godoc
// @Summary      Reactivar producto retirado
// @Tags         products
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Enable(c *fiber.Ctx) error {
	return h.toggle(c, h.uc.Restore)
}

func (h *ProductHandler) toggle(c *fiber.Ctx, fn func(int) (bool, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	ok, err := fn(id)
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return notFound(c, "producto no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetAttributeValue godoc
// @Summary      Upsert del valor de un atributo del producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.CreateProductAttributeValueRequest  true  "Atributo y valor"
// @Success      200  {object}  dto.ProductAttributeValueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/attributes [post]
func (h *ProductHandler) SetAttributeValue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	var in dto.CreateProductAttributeValueRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.SetAttributeValue(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "producto no encontrado")
		case errors.Is(err, domain.ErrAttributeNotFound),
			errors.Is(err, domain.ErrAttributeNotInCategory),
			errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BAD_ATTRIBUTE", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return validationError(c, err)
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateAttributeValue godoc
// @Summary      Actualizar un valor existente (sin insert)
// @Tags         products
// @Accept       json
// @Param        id           path  int  true  "ID del producto"
// @Param        attributeId  path  int  true  "ID del atributo"
// @Param        body  body  dto.UpdateProductAttributeValueRequest  true  "Nuevo valor"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/attributes/{attributeId} [put]
func (h *ProductHandler) UpdateAttributeValue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	attributeID, err := c.ParamsInt("attributeId")
	if err != nil {
		return badID(c)
	}
	var in dto.UpdateProductAttributeValueRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	ok, err := h.uc.UpdateAttributeValue(id, attributeID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return validationError(c, err)
		}
		return internalError(c, err)
	}
	if !ok {
		return notFound(c, "el producto no tiene valor para ese atributo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAttributeValue godoc
// @Summary      Eliminar el valor de un atributo (borrado físico)
// @Tags         products
// @Param        id           path  int  true  "ID del producto"
// @Param        attributeId  path  int  true  "ID del atributo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/attributes/{attributeId} [delete]
func (h *ProductHandler) DeleteAttributeValue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	attributeID, err := c.ParamsInt("attributeId")
	if err != nil {
		return badID(c)
	}
	ok, err := h.uc.RemoveAttributeValue(id, attributeID)
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return notFound(c, "el producto no tiene valor para ese atributo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
