package stock

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/application/dto"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

// StockUseCase consultas de inventario vigente sobre la vista materializada.
// La vista equivale a "saldo sin fecha de corte"; la verdad siempre puede
// reconstruirse reproduciendo el ledger con el BalanceUseCase.
type StockUseCase struct {
	stockRepo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo}
}

// List devuelve filas de la vista filtradas por producto y/o locación.
func (uc *StockUseCase) List(ctx context.Context, tenantID int64, productoID, locacionID *int64) ([]dto.StockItemDTO, error) {
	rows, err := uc.stockRepo.List(ctx, tenantID, productoID, locacionID)
	if err != nil {
		return nil, fmt.Errorf("listar stock: %w", err)
	}
	items := make([]dto.StockItemDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockItemDTO{
			ProductoID: r.ProductoID,
			LocacionID: r.LocacionID,
			Stock:      r.Stock,
		})
	}
	return items, nil
}

// InventarioPorLocacion agrupa el inventario vigente por locación.
// Con includeZero=false se omiten productos con stock <= 0.
func (uc *StockUseCase) InventarioPorLocacion(ctx context.Context, tenantID int64, includeZero bool) ([]dto.InventarioLocacionDTO, error) {
	rows, err := uc.stockRepo.ListInventario(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("inventario por locación: %w", err)
	}

	grupos := make(map[int64]*dto.InventarioLocacionDTO)
	for _, r := range rows {
		if !includeZero && r.Stock.LessThanOrEqual(decimal.Zero) {
			continue
		}
		g, ok := grupos[r.LocacionID]
		if !ok {
			g = &dto.InventarioLocacionDTO{
				LocacionID: r.LocacionID,
				Nombre:     r.LocacionNombre,
				Activa:     r.LocacionActiva,
				TotalStock: decimal.Zero,
			}
			grupos[r.LocacionID] = g
		}
		g.Items = append(g.Items, dto.InventarioProductoDTO{
			ProductoID: r.ProductoID,
			Nombre:     r.ProductoNombre,
			SKU:        r.SKU,
			Activo:     r.ProductoActivo,
			UOM:        r.UOMAbreviatura,
			Stock:      r.Stock,
		})
		g.TotalStock = g.TotalStock.Add(r.Stock)
	}

	out := make([]dto.InventarioLocacionDTO, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

// TotalPorDia devuelve el inventario acumulado por producto hasta la fecha
// dada (fecha calendario UTC, inclusive).
func (uc *StockUseCase) TotalPorDia(ctx context.Context, tenantID int64, fecha time.Time) (*dto.InventarioTotalDiaDTO, error) {
	rows, err := uc.stockRepo.TotalPorDia(ctx, tenantID, fecha)
	if err != nil {
		return nil, fmt.Errorf("inventario total por día: %w", err)
	}
	total := decimal.Zero
	items := make([]dto.InventarioTotalProductoDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.InventarioTotalProductoDTO{
			ProductoID: r.ProductoID,
			Nombre:     r.ProductoNombre,
			SKU:        r.SKU,
			TotalStock: r.TotalStock,
		})
		total = total.Add(r.TotalStock)
	}
	return &dto.InventarioTotalDiaDTO{
		Fecha:          fecha.UTC().Format("2006-01-02"),
		TotalStock:     total,
		TotalProductos: len(items),
		Items:          items,
	}, nil
}
