package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/catalog-pro/internal/interfaces/http"
	"github.com/tu-usuario/catalog-pro/pkg/logger"
)

// Sin swagger.json el registro se omite y la API arranca y sirve rutas igual.
func TestRegisterSwagger_SinArchivoNoImpideElArranque(t *testing.T) {
	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	require.NotPanics(t, func() {
		apphttp.RegisterSwagger(app, "Catalog Pro API", filepath.Join(t.TempDir(), "no-existe.json"), log)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "la API debe servir rutas sin el UI de documentación")
}

// Con el archivo presente el UI queda montado en /docs.
func TestRegisterSwagger_ConArchivoSirveElUI(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"Catalog Pro API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0o644))

	app := fiber.New()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	apphttp.RegisterSwagger(app, "Catalog Pro API", specPath, log)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El swagger.json del repo debe existir en la ruta que usa cmd/api.
func TestSwaggerJSON_PresenteEnElRepo(t *testing.T) {
	_, err := os.Stat(filepath.Join("..", "..", "..", "docs", "swagger.json"))
	assert.NoError(t, err, "docs/swagger.json debe estar versionado para el UI en local")
}
