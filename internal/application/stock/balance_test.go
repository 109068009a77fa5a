package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bledev-tech/inventario-api/internal/application/stock"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/ledger"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

// movRepoFake ledger en memoria con la misma semántica de consulta que el
// adaptador real: filtro por productos y por fecha calendario UTC inclusive,
// orden fecha ASC, id ASC.
type movRepoFake struct {
	movs []*entity.Movimiento
}

func (f *movRepoFake) Create(_ context.Context, m *entity.Movimiento) (int64, error) {
	id := int64(len(f.movs) + 1)
	copia := *m
	copia.ID = id
	f.movs = append(f.movs, &copia)
	return id, nil
}

func (f *movRepoFake) GetByID(_ context.Context, tenantID, id int64) (*entity.Movimiento, error) {
	for _, m := range f.movs {
		if m.TenantID == tenantID && m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *movRepoFake) List(_ context.Context, tenantID int64, _ repository.MovimientoFilter) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range f.movs {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *movRepoFake) ListByProductos(_ context.Context, tenantID int64, productoIDs []int64, desde, hasta *time.Time) ([]*entity.Movimiento, error) {
	ids := make(map[int64]bool, len(productoIDs))
	for _, id := range productoIDs {
		ids[id] = true
	}
	var out []*entity.Movimiento
	for _, m := range f.movs {
		if m.TenantID != tenantID || !ids[m.ProductoID] {
			continue
		}
		dia := ledger.DiaUTC(m.Fecha)
		if desde != nil && dia.Before(ledger.DiaUTC(*desde)) {
			continue
		}
		if hasta != nil && dia.After(ledger.DiaUTC(*hasta)) {
			continue
		}
		out = append(out, m)
	}
	// Los movimientos ya se insertan en orden de fecha en los tests.
	return out, nil
}

const tenant = int64(1)

var (
	dia1 = time.Date(2026, 4, 6, 10, 0, 0, 0, time.UTC)
	dia2 = time.Date(2026, 4, 7, 10, 0, 0, 0, time.UTC)
	dia3 = time.Date(2026, 4, 8, 10, 0, 0, 0, time.UTC)
)

// ledgerDeEjemplo: ingreso 10 en A, traspaso 4 de A a B, uso 2 desde A.
func ledgerDeEjemplo(t *testing.T) *movRepoFake {
	t.Helper()
	repo := &movRepoFake{}
	locA, locB := int64(1), int64(2)
	movs := []*entity.Movimiento{
		{TenantID: tenant, Fecha: dia1, Tipo: entity.TipoIngreso, ProductoID: 100, ToLocacionID: &locA, Cantidad: dec("10")},
		{TenantID: tenant, Fecha: dia2, Tipo: entity.TipoTraspaso, ProductoID: 100, FromLocacionID: &locA, ToLocacionID: &locB, Cantidad: dec("4")},
		{TenantID: tenant, Fecha: dia3, Tipo: entity.TipoUso, ProductoID: 100, FromLocacionID: &locA, Cantidad: dec("2")},
	}
	for _, m := range movs {
		_, err := repo.Create(context.Background(), m)
		require.NoError(t, err)
	}
	return repo
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestGetBalance_PorLocacionYCorte(t *testing.T) {
	uc := stock.NewBalanceUseCase(ledgerDeEjemplo(t))
	ctx := context.Background()
	locA, locB := int64(1), int64(2)

	casos := []struct {
		nombre   string
		locacion *int64
		corte    *time.Time
		saldo    string
	}{
		{"locación A al final", &locA, &dia3, "4"},
		{"locación B al final", &locB, &dia3, "4"},
		{"total del producto al final", nil, &dia3, "8"},
		{"locación A tras el traspaso", &locA, &dia2, "6"},
		{"locación A tras el ingreso", &locA, &dia1, "10"},
		{"sin corte equivale al final", &locA, nil, "4"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			saldo, err := uc.GetBalance(ctx, tenant, 100, c.locacion, c.corte)
			require.NoError(t, err)
			assert.True(t, saldo.Equal(dec(c.saldo)), "saldo = %s, esperado %s", saldo, c.saldo)
		})
	}
}

// Un corte anterior al primer movimiento siempre proyecta cero.
func TestGetBalance_CorteAnteriorAlHistorial(t *testing.T) {
	uc := stock.NewBalanceUseCase(ledgerDeEjemplo(t))
	antes := dia1.AddDate(0, 0, -1)

	saldo, err := uc.GetBalance(context.Background(), tenant, 100, nil, &antes)
	require.NoError(t, err)
	assert.True(t, saldo.IsZero())
}

// El corte es por fecha calendario UTC: dos movimientos del mismo día entran
// juntos aunque tengan horas distintas.
func TestGetBalance_CortePorDiaCalendario(t *testing.T) {
	repo := &movRepoFake{}
	loc := int64(1)
	manana := time.Date(2026, 4, 6, 8, 0, 0, 0, time.UTC)
	noche := time.Date(2026, 4, 6, 23, 0, 0, 0, time.UTC)
	_, err := repo.Create(context.Background(), &entity.Movimiento{
		TenantID: tenant, Fecha: manana, Tipo: entity.TipoIngreso, ProductoID: 100, ToLocacionID: &loc, Cantidad: dec("3"),
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &entity.Movimiento{
		TenantID: tenant, Fecha: noche, Tipo: entity.TipoIngreso, ProductoID: 100, ToLocacionID: &loc, Cantidad: dec("2"),
	})
	require.NoError(t, err)

	uc := stock.NewBalanceUseCase(repo)
	corte := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	saldo, err := uc.GetBalance(context.Background(), tenant, 100, &loc, &corte)
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("5")), "ambos movimientos del día deben entrar en el corte")
}

func TestSaldosHasta_BulkPorProducto(t *testing.T) {
	repo := ledgerDeEjemplo(t)
	locC := int64(3)
	_, err := repo.Create(context.Background(), &entity.Movimiento{
		TenantID: tenant, Fecha: dia1, Tipo: entity.TipoIngreso, ProductoID: 200, ToLocacionID: &locC, Cantidad: dec("7"),
	})
	require.NoError(t, err)

	uc := stock.NewBalanceUseCase(repo)
	saldos, err := uc.SaldosHasta(context.Background(), tenant, []int64{100, 200, 999}, dia3)
	require.NoError(t, err)

	assert.True(t, saldos[100].Equal(dec("8")))
	assert.True(t, saldos[200].Equal(dec("7")))
	// Producto sin movimientos: no aparece en el mapa.
	_, ok := saldos[999]
	assert.False(t, ok)
}

func TestSaldosHasta_SinProductos(t *testing.T) {
	uc := stock.NewBalanceUseCase(&movRepoFake{})
	saldos, err := uc.SaldosHasta(context.Background(), tenant, nil, dia1)
	require.NoError(t, err)
	assert.Empty(t, saldos)
}
