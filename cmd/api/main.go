package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/catalog-pro/internal/application/usecase"
	"github.com/tu-usuario/catalog-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/catalog-pro/internal/interfaces/http"
	"github.com/tu-usuario/catalog-pro/pkg/config"
	"github.com/tu-usuario/catalog-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	dataTypeRepo := postgres.NewDataTypeRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	attributeRepo := postgres.NewCategoryAttributeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	valueRepo := postgres.NewProductAttributeValueRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	dataTypeUC := usecase.NewDataTypeUseCase(dataTypeRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, attributeRepo, dataTypeRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, valueRepo, categoryRepo, attributeRepo, dataTypeRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	httpRouter.RegisterSwagger(app, "Catalog Pro API", "./docs/swagger.json", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		DataTypeUC: dataTypeUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
