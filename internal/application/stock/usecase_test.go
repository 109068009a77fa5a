package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bledev-tech/inventario-api/internal/application/stock"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

type stockRepoFake struct {
	filas      []*entity.StockActual
	inventario []repository.InventarioProductoRow
	totalesDia []repository.TotalDiaRow
}

func (f *stockRepoFake) List(_ context.Context, tenantID int64, productoID, locacionID *int64) ([]*entity.StockActual, error) {
	var out []*entity.StockActual
	for _, s := range f.filas {
		if s.TenantID != tenantID {
			continue
		}
		if productoID != nil && s.ProductoID != *productoID {
			continue
		}
		if locacionID != nil && s.LocacionID != *locacionID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *stockRepoFake) ListInventario(_ context.Context, _ int64) ([]repository.InventarioProductoRow, error) {
	return f.inventario, nil
}

func (f *stockRepoFake) TotalPorLocacion(_ context.Context, _ int64) ([]repository.StockPorLocacionRow, error) {
	return nil, nil
}

func (f *stockRepoFake) TotalPorDia(_ context.Context, _ int64, _ time.Time) ([]repository.TotalDiaRow, error) {
	return f.totalesDia, nil
}

func TestInventarioPorLocacion_AgrupaYTotaliza(t *testing.T) {
	repo := &stockRepoFake{inventario: []repository.InventarioProductoRow{
		{LocacionID: 1, LocacionNombre: "Bodega", LocacionActiva: true, ProductoID: 100, ProductoNombre: "Guante", ProductoActivo: true, Stock: dec("10")},
		{LocacionID: 1, LocacionNombre: "Bodega", LocacionActiva: true, ProductoID: 200, ProductoNombre: "Cinta", ProductoActivo: true, Stock: dec("0")},
		{LocacionID: 2, LocacionNombre: "Obra", LocacionActiva: true, ProductoID: 100, ProductoNombre: "Guante", ProductoActivo: true, Stock: dec("4")},
	}}
	uc := stock.NewStockUseCase(repo)
	ctx := context.Background()

	// Sin include_zero los productos en cero quedan fuera.
	grupos, err := uc.InventarioPorLocacion(ctx, tenant, false)
	require.NoError(t, err)
	require.Len(t, grupos, 2)
	assert.Equal(t, "Bodega", grupos[0].Nombre, "orden alfabético por locación")
	require.Len(t, grupos[0].Items, 1)
	assert.True(t, grupos[0].TotalStock.Equal(dec("10")))

	// Con include_zero el producto en cero aflora y no altera el total.
	grupos, err = uc.InventarioPorLocacion(ctx, tenant, true)
	require.NoError(t, err)
	require.Len(t, grupos, 2)
	require.Len(t, grupos[0].Items, 2)
	assert.True(t, grupos[0].TotalStock.Equal(dec("10")))
}

func TestTotalPorDia(t *testing.T) {
	repo := &stockRepoFake{totalesDia: []repository.TotalDiaRow{
		{ProductoID: 100, ProductoNombre: "Guante", TotalStock: dec("8")},
		{ProductoID: 200, ProductoNombre: "Cinta", SKU: "C-01", TotalStock: dec("5")},
	}}
	uc := stock.NewStockUseCase(repo)

	fecha := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	resp, err := uc.TotalPorDia(context.Background(), tenant, fecha)
	require.NoError(t, err)

	assert.Equal(t, "2026-04-08", resp.Fecha)
	assert.Equal(t, 2, resp.TotalProductos)
	assert.True(t, resp.TotalStock.Equal(dec("13")))
}

func TestListStock_Filtros(t *testing.T) {
	repo := &stockRepoFake{filas: []*entity.StockActual{
		{TenantID: tenant, ProductoID: 100, LocacionID: 1, Stock: dec("10")},
		{TenantID: tenant, ProductoID: 100, LocacionID: 2, Stock: dec("4")},
		{TenantID: 9, ProductoID: 100, LocacionID: 1, Stock: dec("99")},
	}}
	uc := stock.NewStockUseCase(repo)

	loc := int64(2)
	items, err := uc.List(context.Background(), tenant, nil, &loc)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Stock.Equal(dec("4")), "solo la fila de la locación pedida y del tenant")
}
