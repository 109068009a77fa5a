package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bledev-tech/inventario-api/internal/application/dto"
	"github.com/bledev-tech/inventario-api/internal/application/stock"
)

// StockHandler maneja las consultas de saldos: vista vigente, proyector
// puntual e inventario agrupado (protegido).
type StockHandler struct {
	stockUC   *stock.StockUseCase
	balanceUC *stock.BalanceUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stockUC *stock.StockUseCase, balanceUC *stock.BalanceUseCase) *StockHandler {
	return &StockHandler{stockUC: stockUC, balanceUC: balanceUC}
}

// List devuelve filas de la vista de stock vigente.
// GET /api/v1/stock
func (h *StockHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productoID, ok := queryInt64Ptr(c, "producto_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "producto_id inválido"})
	}
	locacionID, ok := queryInt64Ptr(c, "locacion_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "locacion_id inválido"})
	}
	items, err := h.stockUC.List(c.Context(), tenantID, productoID, locacionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": items})
}

// Balance proyecta el saldo puntual de un producto plegando el ledger.
// GET /api/v1/stock/balance?producto_id=&locacion_id=&fecha=
func (h *StockHandler) Balance(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productoID, ok := queryInt64Ptr(c, "producto_id")
	if !ok || productoID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "producto_id requerido"})
	}
	locacionID, ok := queryInt64Ptr(c, "locacion_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "locacion_id inválido"})
	}
	corte, ok := queryFecha(c, "fecha")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha debe ser YYYY-MM-DD"})
	}

	saldo, err := h.balanceUC.GetBalance(c.Context(), tenantID, *productoID, locacionID, corte)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := dto.BalanceDTO{ProductoID: *productoID, LocacionID: locacionID, Saldo: saldo}
	if corte != nil {
		f := corte.Format("2006-01-02")
		resp.Fecha = &f
	}
	return c.JSON(resp)
}

// Inventario devuelve el inventario vigente agrupado por locación.
// GET /api/v1/stock/inventario?include_zero=
func (h *StockHandler) Inventario(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	includeZero := c.QueryBool("include_zero", false)
	locaciones, err := h.stockUC.InventarioPorLocacion(c.Context(), tenantID, includeZero)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"locaciones": locaciones})
}

// TotalDiario devuelve el inventario acumulado por producto hasta una fecha.
// GET /api/v1/stock/total-diario?fecha=
func (h *StockHandler) TotalDiario(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	fecha, ok := queryFecha(c, "fecha")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha debe ser YYYY-MM-DD"})
	}
	corte := time.Now().UTC()
	if fecha != nil {
		corte = *fecha
	}
	resp, err := h.stockUC.TotalPorDia(c.Context(), tenantID, corte)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
