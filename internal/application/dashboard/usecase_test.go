package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bledev-tech/inventario-api/internal/application/dashboard"
	"github.com/bledev-tech/inventario-api/internal/domain"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
	"github.com/bledev-tech/inventario-api/pkg/logger"
)

const tenant = int64(1)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// dashRepoFake respuestas enlatadas por consulta, con error inyectable.
type dashRepoFake struct {
	total, distintos int
	porTipo          map[entity.TipoMovimiento]int
	topUsados        []repository.TopUsadoRow
	ajustesProducto  []repository.AjusteProductoRow
	ajustesLocacion  []repository.AjusteLocacionRow
	recientes        []repository.MovimientoDetalleRow
	err              error
}

func (f *dashRepoFake) CountMovimientos(_ context.Context, _ int64, _ time.Time) (int, int, error) {
	return f.total, f.distintos, f.err
}

func (f *dashRepoFake) CountPorTipo(_ context.Context, _ int64, _ time.Time, tipos []entity.TipoMovimiento) (map[entity.TipoMovimiento]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[entity.TipoMovimiento]int, len(tipos))
	for _, tp := range tipos {
		out[tp] = f.porTipo[tp]
	}
	return out, nil
}

func (f *dashRepoFake) TopUsados(_ context.Context, _ int64, _ time.Time, _ int) ([]repository.TopUsadoRow, error) {
	return f.topUsados, f.err
}

func (f *dashRepoFake) AjustesPorProducto(_ context.Context, _ int64, _ time.Time, _ int) ([]repository.AjusteProductoRow, error) {
	return f.ajustesProducto, f.err
}

func (f *dashRepoFake) AjustesPorLocacion(_ context.Context, _ int64, _ time.Time, _ int) ([]repository.AjusteLocacionRow, error) {
	return f.ajustesLocacion, f.err
}

func (f *dashRepoFake) Recientes(_ context.Context, _ int64, _ repository.MovimientoFilter) ([]repository.MovimientoDetalleRow, error) {
	return f.recientes, f.err
}

// stockRepoFake solo implementa lo que el agregador consulta.
type stockRepoFake struct {
	porLocacion []repository.StockPorLocacionRow
	err         error
}

func (f *stockRepoFake) List(_ context.Context, _ int64, _, _ *int64) ([]*entity.StockActual, error) {
	return nil, nil
}

func (f *stockRepoFake) ListInventario(_ context.Context, _ int64) ([]repository.InventarioProductoRow, error) {
	return nil, nil
}

func (f *stockRepoFake) TotalPorLocacion(_ context.Context, _ int64) ([]repository.StockPorLocacionRow, error) {
	return f.porLocacion, f.err
}

func (f *stockRepoFake) TotalPorDia(_ context.Context, _ int64, _ time.Time) ([]repository.TotalDiaRow, error) {
	return nil, nil
}

func newUC(dash *dashRepoFake, stk *stockRepoFake) *dashboard.DashboardUseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return dashboard.NewDashboardUseCase(dash, stk, log)
}

func TestGetSummary_RatioIngresoUso(t *testing.T) {
	uc := newUC(&dashRepoFake{
		total:     10,
		distintos: 4,
		porTipo: map[entity.TipoMovimiento]int{
			entity.TipoIngreso: 3,
			entity.TipoUso:     1,
			entity.TipoAjuste:  2,
		},
	}, &stockRepoFake{})

	resp, err := uc.GetSummary(context.Background(), tenant)
	require.NoError(t, err)

	assert.Equal(t, 10, resp.TotalMovimientos7d)
	assert.Equal(t, 4, resp.ProductosDistintos7d)
	assert.Equal(t, 2, resp.Ajustes30d)

	ingreso := resp.RatioIngresoUso7d["ingreso"]
	uso := resp.RatioIngresoUso7d["uso"]
	assert.Equal(t, 3, ingreso.Count)
	assert.Equal(t, 1, uso.Count)
	assert.InDelta(t, 75.0, ingreso.Percentage, 0.001)
	assert.InDelta(t, 25.0, uso.Percentage, 0.001)
}

// Sin ingresos ni usos el ratio no divide por cero: ambos porcentajes en 0.
func TestGetSummary_RatioSinMovimientos(t *testing.T) {
	uc := newUC(&dashRepoFake{}, &stockRepoFake{})

	resp, err := uc.GetSummary(context.Background(), tenant)
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.RatioIngresoUso7d["ingreso"].Percentage)
	assert.Equal(t, 0.0, resp.RatioIngresoUso7d["uso"].Percentage)
}

// Todo fallo de almacenamiento aflora como el error genérico de agregación.
func TestGetSummary_ErrorDeAlmacenamiento(t *testing.T) {
	uc := newUC(&dashRepoFake{err: errors.New("conexión perdida")}, &stockRepoFake{})

	_, err := uc.GetSummary(context.Background(), tenant)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAggregation)
	assert.NotContains(t, err.Error(), "conexión perdida",
		"el detalle interno no debe filtrarse al caller")
}

func TestGetTopUsados(t *testing.T) {
	uc := newUC(&dashRepoFake{
		topUsados: []repository.TopUsadoRow{
			{ProductoID: 1, ProductoNombre: "Guante", TotalUsado: dec("12.5")},
			{ProductoID: 2, ProductoNombre: "Cinta", TotalUsado: dec("7")},
		},
	}, &stockRepoFake{})

	resp, err := uc.GetTopUsados(context.Background(), tenant, 7, 5)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Guante", resp.Items[0].Nombre)
	assert.True(t, resp.Items[0].TotalUsado.Equal(dec("12.5")))
	assert.Equal(t, 7, resp.Days)
	assert.Equal(t, 5, resp.Limit)
}

func TestGetAjustesMonitor(t *testing.T) {
	uc := newUC(&dashRepoFake{
		porTipo: map[entity.TipoMovimiento]int{entity.TipoAjuste: 9},
		ajustesProducto: []repository.AjusteProductoRow{
			{ProductoID: 1, ProductoNombre: "Guante", Ajustes: 6},
		},
		ajustesLocacion: []repository.AjusteLocacionRow{
			{LocacionID: 3, LocacionNombre: "Bodega", Ajustes: 5},
			{LocacionID: 4, LocacionNombre: "Obra", Ajustes: 4},
		},
	}, &stockRepoFake{})

	resp, err := uc.GetAjustesMonitor(context.Background(), tenant, 30, 5)
	require.NoError(t, err)

	assert.Equal(t, 9, resp.TotalAjustes)
	require.Len(t, resp.TopProductos, 1)
	assert.Equal(t, 6, resp.TopProductos[0].Ajustes)
	require.Len(t, resp.TopLocaciones, 2)
	assert.Equal(t, "Bodega", resp.TopLocaciones[0].Nombre)
	assert.Equal(t, 30, resp.Days)
}

func TestGetStockPorLocacion_ExcludeZero(t *testing.T) {
	repo := &stockRepoFake{porLocacion: []repository.StockPorLocacionRow{
		{LocacionID: 1, LocacionNombre: "Bodega", StockTotal: dec("40")},
		{LocacionID: 2, LocacionNombre: "Obra", StockTotal: dec("0")},
	}}
	uc := newUC(&dashRepoFake{}, repo)
	ctx := context.Background()

	todos, err := uc.GetStockPorLocacion(ctx, tenant, false)
	require.NoError(t, err)
	assert.Len(t, todos.Items, 2)

	sinCeros, err := uc.GetStockPorLocacion(ctx, tenant, true)
	require.NoError(t, err)
	require.Len(t, sinCeros.Items, 1)
	assert.Equal(t, int64(1), sinCeros.Items[0].LocacionID)
}

func TestGetRecientes(t *testing.T) {
	bodega := "Bodega"
	uc := newUC(&dashRepoFake{
		recientes: []repository.MovimientoDetalleRow{
			{ID: 8, Tipo: entity.TipoUso, ProductoNombre: "Guante", FromLocacion: &bodega, Cantidad: dec("2")},
		},
	}, &stockRepoFake{})

	resp, err := uc.GetRecientes(context.Background(), tenant, repository.MovimientoFilter{Limit: 20})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "uso", resp.Items[0].Tipo)
	require.NotNil(t, resp.Items[0].FromLocacion)
	assert.Equal(t, "Bodega", *resp.Items[0].FromLocacion)
	assert.Equal(t, 20, resp.Limit)
}
