package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bledev-tech/inventario-api/internal/application/dto"
	"github.com/bledev-tech/inventario-api/internal/application/movimiento"
	"github.com/bledev-tech/inventario-api/internal/domain"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

// MovimientoHandler maneja las peticiones HTTP del ledger de movimientos (protegido).
type MovimientoHandler struct {
	uc *movimiento.RegisterMovementUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *movimiento.RegisterMovementUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Register registra un movimiento en el ledger.
// POST /api/v1/movimientos
func (h *MovimientoHandler) Register(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.Register(c.Context(), tenantID, in)
	if err != nil {
		var movErr *domain.MovimientoInvalidoError
		if errors.As(err, &movErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: movErr.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o locación no encontrado"})
		}
		if errors.Is(err, domain.ErrConstraint) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONSTRAINT", Message: "la base de datos rechazó el movimiento"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMovimiento(m))
}

// List devuelve movimientos filtrables, orden fecha DESC, id DESC.
// GET /api/v1/movimientos
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
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
	if f.PersonaID, ok = queryInt64Ptr(c, "persona_id"); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "persona_id inválido"})
	}
	if f.ProveedorID, ok = queryInt64Ptr(c, "proveedor_id"); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "proveedor_id inválido"})
	}
	if f.Desde, ok = queryFecha(c, "desde"); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "desde debe ser YYYY-MM-DD"})
	}
	if f.Hasta, ok = queryFecha(c, "hasta"); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "hasta debe ser YYYY-MM-DD"})
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

	movs, err := h.uc.List(c.Context(), tenantID, f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.MovimientoDTO, 0, len(movs))
	for _, m := range movs {
		items = append(items, dto.FromMovimiento(m))
	}
	return c.JSON(fiber.Map{"items": items, "limit": f.Limit, "offset": f.Offset})
}
