package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Componentes-api/internal/application/inventory"
	"github.com/jhoicas/Componentes-api/internal/application/stock"
	"github.com/jhoicas/Componentes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	PartUC      *usecase.PartUseCase
	LocationUC  *usecase.LocationUseCase
	StockUC     *stock.UseCase
	InventoryUC *inventory.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo: categorías y huellas
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	footprints := api.Group("/footprints")
	footprints.Get("/", catalogHandler.ListFootprints)
	footprints.Post("/", catalogHandler.CreateFootprint)
	footprints.Delete("/:id", catalogHandler.DeleteFootprint)

	// Partes
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Delete("/:id", partHandler.Delete)

	// Ubicaciones
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Delete("/:id", locationHandler.Delete)

	// Libro de stock
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.ListByPart)
	stockGroup.Get("/movements", stockHandler.Movements)
	stockGroup.Post("/entries", stockHandler.CreateEntry)
	stockGroup.Post("/adjust", stockHandler.Adjust)
	stockGroup.Put("/staged", stockHandler.SetStaged)
	stockGroup.Post("/move", stockHandler.Move)

	// Vista de inventario (solo lectura)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	api.Get("/inventory", inventoryHandler.Search)
}
