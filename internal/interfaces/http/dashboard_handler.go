package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bledev-tech/inventario-api/internal/application/dashboard"
	"github.com/bledev-tech/inventario-api/internal/application/dto"
	"github.com/bledev-tech/inventario-api/internal/domain"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

// DashboardHandler maneja las lecturas agregadas de KPIs (protegido).
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) respond(c *fiber.Ctx, resp any, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrAggregation) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "AGGREGATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Summary resumen de actividad: 7 días de movimientos, ratio ingreso/uso y
// ajustes en 30 días.
// GET /api/v1/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.GetSummary(c.Context(), tenantID)
	return h.respond(c, resp, err)
}

// TopUsados productos más consumidos en la ventana móvil.
// GET /api/v1/dashboard/top-usados?days=&limit=
func (h *DashboardHandler) TopUsados(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	days := queryIntDefault(c, "days", 7, 365)
	limit := queryIntDefault(c, "limit", 5, 50)
	resp, err := h.uc.GetTopUsados(c.Context(), tenantID, days, limit)
	return h.respond(c, resp, err)
}

// Ajustes monitor de ajustes: total y rankings por producto y locación.
// GET /api/v1/dashboard/ajustes?days=&top=
func (h *DashboardHandler) Ajustes(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	days := queryIntDefault(c, "days", 30, 365)
	top := queryIntDefault(c, "top", 5, 50)
	resp, err := h.uc.GetAjustesMonitor(c.Context(), tenantID, days, top)
	return h.respond(c, resp, err)
}

// Recientes feed paginado de movimientos con nombres de catálogo.
// GET /api/v1/dashboard/recientes?tipo=&producto_id=&locacion_id=&limit=&offset=
func (h *DashboardHandler) Recientes(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	var f repository.MovimientoFilter
	var ok bool
	if f.ProductoID, ok = queryInt64Ptr(c, "producto_id"); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "producto_id inválido"})
	}
	if f.LocacionID, ok = queryInt64Ptr(c, "locacion_id"); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "locacion_id inválido"})
	}
	if raw := c.Query("tipo"); raw != "" {
		tipo := entity.TipoMovimiento(raw)
		if !tipo.Valido() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "tipo desconocido"})
		}
		f.Tipo = &tipo
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	f.Limit, f.Offset = page.Limit, page.Offset

	resp, err := h.uc.GetRecientes(c.Context(), tenantID, f)
	return h.respond(c, resp, err)
}

// StockLocaciones stock vigente agrupado por locación.
// GET /api/v1/dashboard/stock-locaciones?exclude_zero=
func (h *DashboardHandler) StockLocaciones(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	excludeZero := c.QueryBool("exclude_zero", false)
	resp, err := h.uc.GetStockPorLocacion(c.Context(), tenantID, excludeZero)
	return h.respond(c, resp, err)
}
