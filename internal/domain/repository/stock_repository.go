package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
)

// StockPorLocacionRow total vigente de una locación (vista materializada).
type StockPorLocacionRow struct {
	LocacionID     int64
	LocacionNombre string
	StockTotal     decimal.Decimal
}

// InventarioProductoRow fila de inventario con datos de catálogo unidos.
type InventarioProductoRow struct {
	LocacionID     int64
	LocacionNombre string
	LocacionActiva bool
	ProductoID     int64
	ProductoNombre string
	SKU            string
	ProductoActivo bool
	UOMAbreviatura string
	Stock          decimal.Decimal
}

// TotalDiaRow total acumulado de un producto hasta una fecha.
type TotalDiaRow struct {
	ProductoID     int64
	ProductoNombre string
	SKU            string
	TotalStock     decimal.Decimal
}

// StockRepository define el puerto de lectura de la vista de stock vigente.
// La vista es un atajo equivalente a "saldo sin fecha de corte"; la verdad
// siempre es reproducible plegando el ledger completo.
type StockRepository interface {
	// List devuelve filas de la vista filtradas por producto y/o locación.
	List(ctx context.Context, tenantID int64, productoID, locacionID *int64) ([]*entity.StockActual, error)

	// ListInventario devuelve la vista con catálogo unido, ordenada por
	// nombre de locación y nombre de producto.
	ListInventario(ctx context.Context, tenantID int64) ([]InventarioProductoRow, error)

	// TotalPorLocacion agrupa el stock vigente por locación.
	TotalPorLocacion(ctx context.Context, tenantID int64) ([]StockPorLocacionRow, error)

	// TotalPorDia pliega el ledger hasta la fecha dada (inclusive, fecha
	// calendario UTC) y devuelve el total por producto con la misma
	// convención de signos del proyector.
	TotalPorDia(ctx context.Context, tenantID int64, fecha time.Time) ([]TotalDiaRow, error)
}
