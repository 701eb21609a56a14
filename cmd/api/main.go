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
	"github.com/jhoicas/pos-caja-api/internal/application/sales"
	"github.com/jhoicas/pos-caja-api/internal/application/usecase"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
	"github.com/jhoicas/pos-caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-caja-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-caja-api/internal/interfaces/http"
	"github.com/jhoicas/pos-caja-api/pkg/config"
	"github.com/jhoicas/pos-caja-api/pkg/logger"
)

// repos agrupa los adaptadores de persistencia, sea cual sea el driver.
type repos struct {
	items    repository.ItemRepository
	stores   repository.StoreRepository
	staff    repository.StaffRepository
	sales    repository.SaleRepository
	settings repository.SettingRepository
}

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración de esquema")
		}
		r = repos{
			items:    postgres.NewItemRepository(pool),
			stores:   postgres.NewStoreRepository(pool),
			staff:    postgres.NewStaffRepository(pool),
			sales:    postgres.NewSaleRepository(pool),
			settings: postgres.NewSettingRepository(pool),
		}
	default:
		r = repos{
			items:    memory.NewItemRepository(),
			stores:   memory.NewStoreRepository(),
			staff:    memory.NewStaffRepository(),
			sales:    memory.NewSaleRepository(),
			settings: memory.NewSettingRepository(),
		}
		if err := seedMemory(r); err != nil {
			log.Fatal().Err(err).Msg("datos iniciales en memoria")
		}
	}

	itemUC := usecase.NewItemUseCase(r.items)
	storeUC := usecase.NewStoreUseCase(r.stores)
	staffUC := usecase.NewStaffUseCase(r.staff, r.stores)
	settingUC := usecase.NewSettingUseCase(r.settings)
	createSaleUC := sales.NewCreateSaleUseCase(r.items, r.stores, r.staff, r.sales)
	saleQueryUC := sales.NewQueryUseCase(r.sales)

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
		Title:    "POS Caja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		StoreUC:    storeUC,
		StaffUC:    staffUC,
		SettingUC:  settingUC,
		CreateSale: createSaleUC,
		SaleQuery:  saleQueryUC,
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

// seedMemory crea la tienda y el empleado por defecto para que la caja
// funcione sin registro previo. Equivale a los seeds del esquema PostgreSQL.
func seedMemory(r repos) error {
	store := &entity.Store{Code: "STORE-00000001", Name: "Tienda principal"}
	if err := r.stores.Create(store); err != nil {
		return err
	}
	staff := &entity.Staff{Code: "STAFF-00000001", Name: "Admin", StoreID: store.ID}
	return r.staff.Create(staff)
}
