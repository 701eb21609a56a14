package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-caja-api/internal/application/sales"
	"github.com/jhoicas/pos-caja-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	StoreUC    *usecase.StoreUseCase
	StaffUC    *usecase.StaffUseCase
	SettingUC  *usecase.SettingUseCase
	CreateSale *sales.CreateSaleUseCase
	SaleQuery  *sales.QueryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/code/:code", itemHandler.GetByCode)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Stores
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Staff
	staff := api.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.GetByID)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)

	// Sales (append-only: sin update ni delete)
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQuery)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Reports
	reports := api.Group("/reports")
	reports.Get("/sales", saleHandler.Report)

	// Settings
	settings := api.Group("/settings")
	settingHandler := NewSettingHandler(deps.SettingUC)
	settings.Get("/", settingHandler.List)
	settings.Put("/:key", settingHandler.Update)
}
