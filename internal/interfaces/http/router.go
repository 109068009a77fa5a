package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bledev-tech/inventario-api/internal/application/dashboard"
	"github.com/bledev-tech/inventario-api/internal/application/movimiento"
	"github.com/bledev-tech/inventario-api/internal/application/stock"
	"github.com/bledev-tech/inventario-api/internal/application/weekly"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterMovement *movimiento.RegisterMovementUseCase
	StockUC          *stock.StockUseCase
	BalanceUC        *stock.BalanceUseCase
	WeeklyUC         *weekly.WeeklyStockUseCase
	DashboardUC      *dashboard.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Todas las rutas de negocio requieren
// Bearer Token; el tenant siempre sale del token, nunca de la petición.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1", AuthMiddleware(deps.JWTSecret))

	// Movimientos (ledger append-only)
	movs := api.Group("/movimientos")
	movHandler := NewMovimientoHandler(deps.RegisterMovement)
	movs.Post("/", RequireRole("admin", "operador"), movHandler.Register)
	movs.Get("/", movHandler.List)

	// Stock (vista vigente + proyector puntual)
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.BalanceUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/balance", stockHandler.Balance)
	stockGroup.Get("/inventario", stockHandler.Inventario)
	stockGroup.Get("/total-diario", stockHandler.TotalDiario)

	// Reconstrucción por ventanas
	weeklyHandler := NewWeeklyHandler(deps.WeeklyUC)
	api.Get("/weekly-stock", weeklyHandler.GetSerie)

	// Dashboard (agregados)
	dash := api.Group("/dashboard")
	dashHandler := NewDashboardHandler(deps.DashboardUC)
	dash.Get("/summary", dashHandler.Summary)
	dash.Get("/top-usados", dashHandler.TopUsados)
	dash.Get("/ajustes", dashHandler.Ajustes)
	dash.Get("/recientes", dashHandler.Recientes)
	dash.Get("/stock-locaciones", dashHandler.StockLocaciones)
}
