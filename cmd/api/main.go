package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Componentes-api/docs"
	appinventory "github.com/jhoicas/Componentes-api/internal/application/inventory"
	appstock "github.com/jhoicas/Componentes-api/internal/application/stock"
	"github.com/jhoicas/Componentes-api/internal/application/usecase"
	"github.com/jhoicas/Componentes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Componentes-api/internal/interfaces/http"
	"github.com/jhoicas/Componentes-api/pkg/config"
	"github.com/jhoicas/Componentes-api/pkg/logger"
)

// @title        Componentes API
// @version      1.0
// @description  Inventario de partes electrónicas: catálogo, ubicaciones y libro de stock.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrar esquema")
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("esquema aplicado")

	categoryRepo := postgres.NewCategoryRepository(pool)
	footprintRepo := postgres.NewFootprintRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := usecase.NewCatalogUseCase(categoryRepo, footprintRepo)
	partUC := usecase.NewPartUseCase(txRunner, partRepo, categoryRepo, footprintRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	stockUC := appstock.NewUseCase(txRunner, stockRepo, movementRepo)
	inventoryUC := appinventory.NewUseCase(inventoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Componentes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		PartUC:      partUC,
		LocationUC:  locationUC,
		StockUC:     stockUC,
		InventoryUC: inventoryUC,
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
