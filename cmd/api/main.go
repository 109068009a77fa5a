package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bledev-tech/inventario-api/internal/application/dashboard"
	"github.com/bledev-tech/inventario-api/internal/application/movimiento"
	"github.com/bledev-tech/inventario-api/internal/application/stock"
	"github.com/bledev-tech/inventario-api/internal/application/weekly"
	"github.com/bledev-tech/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/bledev-tech/inventario-api/internal/interfaces/http"
	"github.com/bledev-tech/inventario-api/pkg/config"
	"github.com/bledev-tech/inventario-api/pkg/logger"
)

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

	movRepo := postgres.NewMovimientoRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	locacionRepo := postgres.NewLocacionRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	dashRepo := postgres.NewDashboardRepository(pool)

	registerMovementUC := movimiento.NewRegisterMovementUseCase(movRepo, productoRepo, locacionRepo)
	balanceUC := stock.NewBalanceUseCase(movRepo)
	stockUC := stock.NewStockUseCase(stockRepo)
	weeklyUC := weekly.NewWeeklyStockUseCase(movRepo, productoRepo, balanceUC)
	dashboardUC := dashboard.NewDashboardUseCase(dashRepo, stockRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterMovement: registerMovementUC,
		StockUC:          stockUC,
		BalanceUC:        balanceUC,
		WeeklyUC:         weeklyUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
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
