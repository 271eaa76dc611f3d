package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalog-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	DataTypeUC *usecase.DataTypeUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories y definiciones de atributo
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	// Las rutas de atributo van antes que /:id para que "attributes" no se
	// capture como id de categoría.
	categories.Put("/attributes/:attributeId", categoryHandler.UpdateAttribute)
	categories.Delete("/attributes/:attributeId", categoryHandler.DeleteAttribute)
	categories.Patch("/attributes/:attributeId", categoryHandler.EnableAttribute)
	categories.Post("/:categoryId/attributes", categoryHandler.AddAttribute)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Patch("/:id", categoryHandler.Enable)

	// Products y valores de atributo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Patch("/:id", productHandler.Enable)
	products.Post("/:id/attributes", productHandler.SetAttributeValue)
	products.Put("/:id/attributes/:attributeId", productHandler.UpdateAttributeValue)
	products.Delete("/:id/attributes/:attributeId", productHandler.DeleteAttributeValue)

	// Registro de tipos de dato (solo lectura)
	dataTypes := api.Group("/datatypes")
	dataTypeHandler := NewDataTypeHandler(deps.DataTypeUC)
	dataTypes.Get("/", dataTypeHandler.List)
}
