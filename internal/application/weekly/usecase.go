// Package weekly contiene el motor de reconstrucción de stock por ventanas:
// serie diaria (entradas, salidas, neto, saldo acumulado) por producto a lo
// largo de un rango de fechas, con línea base anterior a la ventana.
package weekly

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/application/dto"
	"github.com/bledev-tech/inventario-api/internal/application/stock"
	"github.com/bledev-tech/inventario-api/internal/domain"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/ledger"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

// SerieParams parámetros de una reconstrucción por ventana.
// Desde/Hasta son fechas calendario UTC, ambas inclusivas.
type SerieParams struct {
	Desde        time.Time
	Hasta        time.Time
	CategoriaIDs []int64
	ProductoIDs  []int64
	IncludeZero  bool
}

// WeeklyStockUseCase reconstruye la serie diaria de stock por producto.
// Depende del proyector para la línea base previa a la ventana y del ledger
// para la actividad dentro de ella; nunca de la vista materializada.
type WeeklyStockUseCase struct {
	movRepo      repository.MovimientoRepository
	productoRepo repository.ProductoRepository
	balance      *stock.BalanceUseCase
}

// NewWeeklyStockUseCase construye el motor.
func NewWeeklyStockUseCase(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	balance *stock.BalanceUseCase,
) *WeeklyStockUseCase {
	return &WeeklyStockUseCase{movRepo: movRepo, productoRepo: productoRepo, balance: balance}
}

// acumuladorDia entradas y salidas de un producto en un día concreto.
type acumuladorDia struct {
	entradas decimal.Decimal
	salidas  decimal.Decimal
}

// GetSerie produce una serie por producto más totales agregados.
//
// El conjunto candidato se arma pre-filtrando el catálogo (categorías y/o
// productos explícitos) antes de consultar el ledger; así los productos
// filtrados sin actividad también afloran cuando include_zero lo pide, y no
// se escanean movimientos de productos fuera de filtro.
func (uc *WeeklyStockUseCase) GetSerie(ctx context.Context, tenantID int64, p SerieParams) (*dto.SerieSemanalResponse, error) {
	desde := ledger.DiaUTC(p.Desde)
	hasta := ledger.DiaUTC(p.Hasta)
	if hasta.Before(desde) {
		return nil, fmt.Errorf("%w: el rango de fechas está invertido", domain.ErrInvalidInput)
	}

	productos, err := uc.productoRepo.ListActivos(ctx, tenantID, p.CategoriaIDs, p.ProductoIDs)
	if err != nil {
		return nil, fmt.Errorf("serie semanal: catálogo: %w", err)
	}
	if len(productos) == 0 {
		return &dto.SerieSemanalResponse{
			Desde: desde.Format("2006-01-02"),
			Hasta: hasta.Format("2006-01-02"),
			Items: []dto.ProductoSerieDTO{},
		}, nil
	}

	ids := make([]int64, 0, len(productos))
	for _, prod := range productos {
		ids = append(ids, prod.ID)
	}

	// Línea base: saldo estrictamente anterior a la ventana (corte = desde-1).
	baseline, err := uc.balance.SaldosHasta(ctx, tenantID, ids, desde.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("serie semanal: %w", err)
	}

	// Actividad dentro de la ventana, agrupada por (producto, día).
	movs, err := uc.movRepo.ListByProductos(ctx, tenantID, ids, &desde, &hasta)
	if err != nil {
		return nil, fmt.Errorf("serie semanal: actividad: %w", err)
	}
	actividad := make(map[int64]map[string]*acumuladorDia)
	for _, m := range movs {
		entrada, salida := ledger.EntradaSalida(m, nil)
		if entrada.IsZero() && salida.IsZero() {
			continue
		}
		dia := ledger.DiaUTC(m.Fecha).Format("2006-01-02")
		porDia, ok := actividad[m.ProductoID]
		if !ok {
			porDia = make(map[string]*acumuladorDia)
			actividad[m.ProductoID] = porDia
		}
		acc, ok := porDia[dia]
		if !ok {
			acc = &acumuladorDia{entradas: decimal.Zero, salidas: decimal.Zero}
			porDia[dia] = acc
		}
		acc.entradas = acc.entradas.Add(entrada)
		acc.salidas = acc.salidas.Add(salida)
	}

	// Eje de días: todos los días calendario de la ventana, en orden,
	// existan o no movimientos ese día.
	var dias []time.Time
	for d := desde; !d.After(hasta); d = d.AddDate(0, 0, 1) {
		dias = append(dias, d)
	}

	// El catálogo ya está ordenado por id ASC; el orden de salida es
	// determinista para respuestas reproducibles.
	sort.Slice(productos, func(i, j int) bool { return productos[i].ID < productos[j].ID })

	resp := &dto.SerieSemanalResponse{
		Desde: desde.Format("2006-01-02"),
		Hasta: hasta.Format("2006-01-02"),
		Items: []dto.ProductoSerieDTO{},
		Totales: dto.SerieTotalesDTO{
			StockInicial:  decimal.Zero,
			StockFinal:    decimal.Zero,
			TotalEntradas: decimal.Zero,
			TotalSalidas:  decimal.Zero,
		},
	}

	for _, prod := range productos {
		item, conActividad := uc.armarSerie(prod, baseline[prod.ID], actividad[prod.ID], dias)
		if !p.IncludeZero && !conActividad {
			// Productos sin saldo base, sin actividad diaria y con saldo
			// acumulado siempre cero no aportan a la salida ni a los totales.
			continue
		}
		resp.Items = append(resp.Items, item)
		resp.Totales.Productos++
		resp.Totales.StockInicial = resp.Totales.StockInicial.Add(item.StockInicial)
		resp.Totales.StockFinal = resp.Totales.StockFinal.Add(item.StockFinal)
		for _, d := range item.Dias {
			resp.Totales.TotalEntradas = resp.Totales.TotalEntradas.Add(d.Entradas)
			resp.Totales.TotalSalidas = resp.Totales.TotalSalidas.Add(d.Salidas)
		}
	}

	return resp, nil
}

// armarSerie recorre el eje de días acumulando el saldo desde la línea base.
// El segundo retorno indica si el producto muestra algo distinto de cero en
// la base, en algún día o en algún saldo acumulado.
func (uc *WeeklyStockUseCase) armarSerie(
	prod *entity.Producto,
	inicial decimal.Decimal,
	porDia map[string]*acumuladorDia,
	dias []time.Time,
) (dto.ProductoSerieDTO, bool) {
	item := dto.ProductoSerieDTO{
		ProductoID:   prod.ID,
		Nombre:       prod.Nombre,
		SKU:          prod.SKU,
		CategoriaID:  prod.CategoriaID,
		StockInicial: inicial,
		Dias:         make([]dto.DiaSerieDTO, 0, len(dias)),
	}
	conActividad := !inicial.IsZero()

	saldo := inicial
	for _, d := range dias {
		clave := d.Format("2006-01-02")
		entradas, salidas := decimal.Zero, decimal.Zero
		if acc, ok := porDia[clave]; ok {
			entradas, salidas = acc.entradas, acc.salidas
		}
		neto := entradas.Sub(salidas)
		saldo = saldo.Add(neto)
		if !entradas.IsZero() || !salidas.IsZero() || !saldo.IsZero() {
			conActividad = true
		}
		item.Dias = append(item.Dias, dto.DiaSerieDTO{
			Fecha:          clave,
			Entradas:       entradas,
			Salidas:        salidas,
			Neto:           neto,
			SaldoAcumulado: saldo,
		})
	}

	item.StockFinal = saldo
	item.Variacion = saldo.Sub(inicial)
	return item, conActividad
}
