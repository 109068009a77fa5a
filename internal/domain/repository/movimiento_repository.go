package repository

import (
	"context"
	"time"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
)

// MovimientoFilter filtros opcionales para listar movimientos.
// Desde/Hasta acotan por fecha calendario UTC, ambos inclusivos.
// LocacionID matchea origen O destino.
type MovimientoFilter struct {
	ProductoID  *int64
	LocacionID  *int64
	Tipo        *entity.TipoMovimiento
	PersonaID   *int64
	ProveedorID *int64
	Desde       *time.Time
	Hasta       *time.Time
	Limit       int
	Offset      int
}

// MovimientoRepository define el puerto del ledger: colección append-only,
// por tenant, de movimientos inmutables. Única fuente de verdad de saldos.
type MovimientoRepository interface {
	// Create persiste un movimiento y devuelve el ID asignado (secuencia
	// monótona creciente). Falla con domain.ErrConstraint si la base rechaza
	// la escritura por una restricción de integridad.
	Create(ctx context.Context, m *entity.Movimiento) (int64, error)

	GetByID(ctx context.Context, tenantID, id int64) (*entity.Movimiento, error)

	// List devuelve movimientos ordenados por fecha DESC, id DESC.
	List(ctx context.Context, tenantID int64, f MovimientoFilter) ([]*entity.Movimiento, error)

	// ListByProductos devuelve todos los movimientos de los productos dados
	// dentro del rango de fechas calendario UTC (ambos inclusivos; nil = sin
	// cota), ordenados por fecha ASC, id ASC. Es la consulta base del
	// proyector y del motor de reconstrucción por ventanas.
	ListByProductos(ctx context.Context, tenantID int64, productoIDs []int64, desde, hasta *time.Time) ([]*entity.Movimiento, error)
}
