package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bledev-tech/inventario-api/internal/application/dto"
	"github.com/bledev-tech/inventario-api/internal/application/weekly"
	"github.com/bledev-tech/inventario-api/internal/domain"
)

// WeeklyHandler maneja la reconstrucción de stock por ventanas (protegido).
// La ventana se pide de dos formas: week_start+weeks (semanas normalizadas a
// lunes) o desde+hasta (rango arbitrario de fechas calendario UTC).
type WeeklyHandler struct {
	uc *weekly.WeeklyStockUseCase
}

// NewWeeklyHandler construye el handler.
func NewWeeklyHandler(uc *weekly.WeeklyStockUseCase) *WeeklyHandler {
	return &WeeklyHandler{uc: uc}
}

// GetSerie devuelve la serie diaria por producto dentro de la ventana.
// GET /api/v1/weekly-stock?week_start=&weeks=&desde=&hasta=&categorias=&productos=&include_zero=
func (h *WeeklyHandler) GetSerie(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	desde, ok := queryFecha(c, "desde")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "desde debe ser YYYY-MM-DD"})
	}
	hasta, ok := queryFecha(c, "hasta")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "hasta debe ser YYYY-MM-DD"})
	}
	weekStart, ok := queryFecha(c, "week_start")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "week_start debe ser YYYY-MM-DD"})
	}

	var d, hta time.Time
	switch {
	case desde != nil && hasta != nil:
		d, hta = *desde, *hasta
	case desde != nil || hasta != nil:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "desde y hasta deben venir juntos"})
	default:
		// Sin rango explícito: semana(s) normalizada(s) a lunes. week_start
		// ausente equivale a la semana actual.
		ref := time.Now().UTC()
		if weekStart != nil {
			ref = *weekStart
		}
		weeks := queryIntDefault(c, "weeks", 1, 12)
		d, hta = weekly.ResolverVentana(ref, weeks)
	}

	categoriaIDs, ok := queryIDList(c, "categorias")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "categorias debe ser una lista de IDs"})
	}
	productoIDs, ok := queryIDList(c, "productos")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "productos debe ser una lista de IDs"})
	}

	resp, err := h.uc.GetSerie(c.Context(), tenantID, weekly.SerieParams{
		Desde:        d,
		Hasta:        hta,
		CategoriaIDs: categoriaIDs,
		ProductoIDs:  productoIDs,
		IncludeZero:  c.QueryBool("include_zero", false),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
