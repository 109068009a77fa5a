package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
)

// TopUsadoRow total consumido de un producto en la ventana consultada.
type TopUsadoRow struct {
	ProductoID     int64
	ProductoNombre string
	TotalUsado     decimal.Decimal
}

// AjusteProductoRow conteo de ajustes de un producto.
type AjusteProductoRow struct {
	ProductoID     int64
	ProductoNombre string
	Ajustes        int
}

// AjusteLocacionRow conteo de ajustes que tocan una locación. Un movimiento
// cuenta una sola vez por locación aunque la tenga como origen y destino.
type AjusteLocacionRow struct {
	LocacionID     int64
	LocacionNombre string
	Ajustes        int
}

// MovimientoDetalleRow movimiento reciente con nombres de catálogo unidos.
type MovimientoDetalleRow struct {
	ID              int64
	Fecha           time.Time
	Tipo            entity.TipoMovimiento
	ProductoNombre  string
	FromLocacion    *string
	ToLocacion      *string
	PersonaNombre   *string
	ProveedorNombre *string
	Cantidad        decimal.Decimal
	Nota            string
}

// DashboardRepository define las consultas read-only del agregador de KPIs.
// Las implementaciones no modifican datos.
type DashboardRepository interface {
	// CountMovimientos cuenta movimientos y productos distintos desde la fecha dada.
	CountMovimientos(ctx context.Context, tenantID int64, desde time.Time) (total, productosDistintos int, err error)

	// CountPorTipo cuenta movimientos por tipo desde la fecha dada,
	// restringido a los tipos indicados.
	CountPorTipo(ctx context.Context, tenantID int64, desde time.Time, tipos []entity.TipoMovimiento) (map[entity.TipoMovimiento]int, error)

	// TopUsados suma cantidades de movimientos de uso por producto,
	// orden: total DESC, nombre ASC.
	TopUsados(ctx context.Context, tenantID int64, desde time.Time, limit int) ([]TopUsadoRow, error)

	// AjustesPorProducto cuenta ajustes por producto, orden: conteo DESC, nombre ASC.
	AjustesPorProducto(ctx context.Context, tenantID int64, desde time.Time, top int) ([]AjusteProductoRow, error)

	// AjustesPorLocacion cuenta ajustes por locación (origen o destino,
	// sin duplicar), orden: conteo DESC, nombre ASC.
	AjustesPorLocacion(ctx context.Context, tenantID int64, desde time.Time, top int) ([]AjusteLocacionRow, error)

	// Recientes lista los movimientos más recientes con nombres unidos,
	// orden fecha DESC, id DESC.
	Recientes(ctx context.Context, tenantID int64, f MovimientoFilter) ([]MovimientoDetalleRow, error)
}
