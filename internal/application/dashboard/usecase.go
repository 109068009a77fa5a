// Package dashboard contiene el agregador de KPIs operativos sobre el ledger:
// resumen de actividad, top de consumo, monitor de ajustes, stock por
// locación y el feed de movimientos recientes.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/application/dto"
	"github.com/bledev-tech/inventario-api/internal/domain"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
	"github.com/bledev-tech/inventario-api/pkg/logger"
)

// DashboardUseCase lecturas agregadas para dashboards operativos.
//
// Cualquier error de almacenamiento se reporta como el fallo genérico
// domain.ErrAggregation, sin reintentos internos: las consultas son
// idempotentes y el reintento es política del caller.
type DashboardUseCase struct {
	dashRepo  repository.DashboardRepository
	stockRepo repository.StockRepository
	log       *logger.Logger
}

// NewDashboardUseCase construye el agregador.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, stockRepo repository.StockRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, stockRepo: stockRepo, log: log}
}

// aggErr loguea el error real y devuelve el fallo genérico de agregación.
func (uc *DashboardUseCase) aggErr(consulta string, err error) error {
	uc.log.Error().Err(err).Str("consulta", consulta).Msg("error consultando datos del dashboard")
	return domain.ErrAggregation
}

// GetSummary construye el resumen de actividad: movimientos y productos
// distintos en 7 días, ratio ingreso/uso en 7 días y ajustes en 30 días.
// Las tres consultas corren en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, tenantID int64) (*dto.DashboardSummaryDTO, error) {
	now := time.Now().UTC()
	hace7d := now.AddDate(0, 0, -7)
	hace30d := now.AddDate(0, 0, -30)

	type totalesResult struct {
		total, distintos int
		err              error
	}
	type ratioResult struct {
		counts map[entity.TipoMovimiento]int
		err    error
	}
	type ajustesResult struct {
		counts map[entity.TipoMovimiento]int
		err    error
	}

	totalesCh := make(chan totalesResult, 1)
	ratioCh := make(chan ratioResult, 1)
	ajustesCh := make(chan ajustesResult, 1)

	go func() {
		total, distintos, err := uc.dashRepo.CountMovimientos(ctx, tenantID, hace7d)
		totalesCh <- totalesResult{total, distintos, err}
	}()
	go func() {
		counts, err := uc.dashRepo.CountPorTipo(ctx, tenantID, hace7d, []entity.TipoMovimiento{entity.TipoIngreso, entity.TipoUso})
		ratioCh <- ratioResult{counts, err}
	}()
	go func() {
		counts, err := uc.dashRepo.CountPorTipo(ctx, tenantID, hace30d, []entity.TipoMovimiento{entity.TipoAjuste})
		ajustesCh <- ajustesResult{counts, err}
	}()

	totales := <-totalesCh
	ratio := <-ratioCh
	ajustes := <-ajustesCh

	if totales.err != nil {
		return nil, uc.aggErr("totales_7d", totales.err)
	}
	if ratio.err != nil {
		return nil, uc.aggErr("ratio_ingreso_uso", ratio.err)
	}
	if ajustes.err != nil {
		return nil, uc.aggErr("ajustes_30d", ajustes.err)
	}

	ingresos := ratio.counts[entity.TipoIngreso]
	usos := ratio.counts[entity.TipoUso]
	ratioTotal := ingresos + usos
	pctIngreso, pctUso := 0.0, 0.0
	if ratioTotal > 0 {
		pctIngreso = float64(ingresos) / float64(ratioTotal) * 100
		pctUso = float64(usos) / float64(ratioTotal) * 100
	}

	return &dto.DashboardSummaryDTO{
		TotalMovimientos7d:   totales.total,
		ProductosDistintos7d: totales.distintos,
		RatioIngresoUso7d: map[string]dto.TipoPorcentajeDTO{
			string(entity.TipoIngreso): {Count: ingresos, Percentage: pctIngreso},
			string(entity.TipoUso):     {Count: usos, Percentage: pctUso},
		},
		Ajustes30d: ajustes.counts[entity.TipoAjuste],
	}, nil
}

// GetTopUsados devuelve los productos más consumidos en la ventana móvil.
func (uc *DashboardUseCase) GetTopUsados(ctx context.Context, tenantID int64, days, limit int) (*dto.TopUsadosResponse, error) {
	desde := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := uc.dashRepo.TopUsados(ctx, tenantID, desde, limit)
	if err != nil {
		return nil, uc.aggErr("top_usados", err)
	}
	items := make([]dto.TopUsadoDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TopUsadoDTO{
			ProductoID: r.ProductoID,
			Nombre:     r.ProductoNombre,
			TotalUsado: r.TotalUsado,
		})
	}
	return &dto.TopUsadosResponse{Items: items, Days: days, Limit: limit}, nil
}

// GetAjustesMonitor cuenta ajustes en la ventana móvil y rankea los productos
// y locaciones más ajustados.
func (uc *DashboardUseCase) GetAjustesMonitor(ctx context.Context, tenantID int64, days, top int) (*dto.AjustesMonitorResponse, error) {
	desde := time.Now().UTC().AddDate(0, 0, -days)

	counts, err := uc.dashRepo.CountPorTipo(ctx, tenantID, desde, []entity.TipoMovimiento{entity.TipoAjuste})
	if err != nil {
		return nil, uc.aggErr("ajustes_total", err)
	}
	porProducto, err := uc.dashRepo.AjustesPorProducto(ctx, tenantID, desde, top)
	if err != nil {
		return nil, uc.aggErr("ajustes_por_producto", err)
	}
	porLocacion, err := uc.dashRepo.AjustesPorLocacion(ctx, tenantID, desde, top)
	if err != nil {
		return nil, uc.aggErr("ajustes_por_locacion", err)
	}

	resp := &dto.AjustesMonitorResponse{
		TotalAjustes:  counts[entity.TipoAjuste],
		TopProductos:  make([]dto.AjusteProductoDTO, 0, len(porProducto)),
		TopLocaciones: make([]dto.AjusteLocacionDTO, 0, len(porLocacion)),
		Days:          days,
	}
	for _, r := range porProducto {
		resp.TopProductos = append(resp.TopProductos, dto.AjusteProductoDTO{
			ProductoID: r.ProductoID,
			Nombre:     r.ProductoNombre,
			Ajustes:    r.Ajustes,
		})
	}
	for _, r := range porLocacion {
		resp.TopLocaciones = append(resp.TopLocaciones, dto.AjusteLocacionDTO{
			LocacionID: r.LocacionID,
			Nombre:     r.LocacionNombre,
			Ajustes:    r.Ajustes,
		})
	}
	return resp, nil
}

// GetRecientes devuelve el feed paginado de movimientos con nombres unidos.
func (uc *DashboardUseCase) GetRecientes(ctx context.Context, tenantID int64, f repository.MovimientoFilter) (*dto.MovimientosRecientesResponse, error) {
	rows, err := uc.dashRepo.Recientes(ctx, tenantID, f)
	if err != nil {
		return nil, uc.aggErr("movimientos_recientes", err)
	}
	items := make([]dto.MovimientoRecienteDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MovimientoRecienteDTO{
			ID:              r.ID,
			Fecha:           r.Fecha,
			Tipo:            string(r.Tipo),
			ProductoNombre:  r.ProductoNombre,
			FromLocacion:    r.FromLocacion,
			ToLocacion:      r.ToLocacion,
			PersonaNombre:   r.PersonaNombre,
			ProveedorNombre: r.ProveedorNombre,
			Cantidad:        r.Cantidad,
			Nota:            r.Nota,
		})
	}
	return &dto.MovimientosRecientesResponse{Items: items, Limit: f.Limit, Offset: f.Offset}, nil
}

// GetStockPorLocacion devuelve el stock vigente agrupado por locación.
// Con excludeZero=true se omiten locaciones con total cero.
func (uc *DashboardUseCase) GetStockPorLocacion(ctx context.Context, tenantID int64, excludeZero bool) (*dto.StockLocacionesResponse, error) {
	rows, err := uc.stockRepo.TotalPorLocacion(ctx, tenantID)
	if err != nil {
		return nil, uc.aggErr("stock_por_locacion", err)
	}
	items := make([]dto.StockPorLocacionDTO, 0, len(rows))
	for _, r := range rows {
		if excludeZero && r.StockTotal.Equal(decimal.Zero) {
			continue
		}
		items = append(items, dto.StockPorLocacionDTO{
			LocacionID: r.LocacionID,
			Nombre:     r.LocacionNombre,
			StockTotal: r.StockTotal,
		})
	}
	return &dto.StockLocacionesResponse{Items: items}, nil
}
