package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
)

// RegistrarMovimientoRequest body para POST /api/v1/movimientos.
// Según el tipo: ingreso requiere to_locacion_id; uso requiere from_locacion_id;
// traspaso requiere ambos y distintos; ajuste al menos uno.
type RegistrarMovimientoRequest struct {
	Tipo           string          `json:"tipo"`
	ProductoID     int64           `json:"producto_id"`
	FromLocacionID *int64          `json:"from_locacion_id,omitempty"`
	ToLocacionID   *int64          `json:"to_locacion_id,omitempty"`
	PersonaID      *int64          `json:"persona_id,omitempty"`
	ProveedorID    *int64          `json:"proveedor_id,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Nota           string          `json:"nota,omitempty"`
	// Fecha opcional; si se omite se usa el instante actual.
	Fecha *time.Time `json:"fecha,omitempty"`
}

// MovimientoDTO respuesta de un movimiento persistido.
type MovimientoDTO struct {
	ID             int64           `json:"id"`
	Fecha          time.Time       `json:"fecha"`
	Tipo           string          `json:"tipo"`
	ProductoID     int64           `json:"producto_id"`
	FromLocacionID *int64          `json:"from_locacion_id,omitempty"`
	ToLocacionID   *int64          `json:"to_locacion_id,omitempty"`
	PersonaID      *int64          `json:"persona_id,omitempty"`
	ProveedorID    *int64          `json:"proveedor_id,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Nota           string          `json:"nota,omitempty"`
}

// FromMovimiento mapea la entidad al DTO de salida.
func FromMovimiento(m *entity.Movimiento) MovimientoDTO {
	return MovimientoDTO{
		ID:             m.ID,
		Fecha:          m.Fecha,
		Tipo:           string(m.Tipo),
		ProductoID:     m.ProductoID,
		FromLocacionID: m.FromLocacionID,
		ToLocacionID:   m.ToLocacionID,
		PersonaID:      m.PersonaID,
		ProveedorID:    m.ProveedorID,
		Cantidad:       m.Cantidad,
		Nota:           m.Nota,
	}
}
