package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalog-pro/pkg/logger"
)

// RegisterSwagger monta el UI de Swagger en /docs. El middleware entra en
// pánico si FilePath no existe, así que si el archivo falta se omite el
// registro con un aviso y la API arranca sin documentación.
func RegisterSwagger(app *fiber.App, title, filePath string, log *logger.Logger) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado, UI de documentación deshabilitado")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
}
