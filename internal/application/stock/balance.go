// Package stock contiene los casos de uso de lectura de saldos: el proyector
// puntual sobre el ledger y las consultas de la vista de stock vigente.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/domain/ledger"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

// BalanceUseCase proyecta saldos puntuales plegando el ledger.
// No rechaza saldos negativos: si el ledger permitió sobre-consumo, el saldo
// lo refleja y la política queda en manos del caller.
type BalanceUseCase struct {
	movRepo repository.MovimientoRepository
}

// NewBalanceUseCase construye el proyector.
func NewBalanceUseCase(movRepo repository.MovimientoRepository) *BalanceUseCase {
	return &BalanceUseCase{movRepo: movRepo}
}

// GetBalance devuelve el saldo de un producto en una locación (o agregado en
// todas si locacionID es nil), con corte opcional por fecha calendario UTC
// inclusive. Corte nil = saldo actual (todo el historial).
func (uc *BalanceUseCase) GetBalance(ctx context.Context, tenantID, productoID int64, locacionID *int64, corte *time.Time) (decimal.Decimal, error) {
	movs, err := uc.movRepo.ListByProductos(ctx, tenantID, []int64{productoID}, nil, corte)
	if err != nil {
		return decimal.Zero, fmt.Errorf("proyectar saldo: %w", err)
	}
	saldo := decimal.Zero
	for _, m := range movs {
		saldo = saldo.Add(ledger.Efecto(m, locacionID))
	}
	return saldo, nil
}

// SaldosHasta devuelve el saldo total (todas las locaciones) de cada producto
// hasta la fecha de corte inclusive. Productos sin movimientos no aparecen en
// el mapa. Es la consulta de línea base del motor de reconstrucción.
func (uc *BalanceUseCase) SaldosHasta(ctx context.Context, tenantID int64, productoIDs []int64, corte time.Time) (map[int64]decimal.Decimal, error) {
	if len(productoIDs) == 0 {
		return map[int64]decimal.Decimal{}, nil
	}
	movs, err := uc.movRepo.ListByProductos(ctx, tenantID, productoIDs, nil, &corte)
	if err != nil {
		return nil, fmt.Errorf("proyectar saldos base: %w", err)
	}
	saldos := make(map[int64]decimal.Decimal, len(productoIDs))
	for _, m := range movs {
		saldos[m.ProductoID] = saldos[m.ProductoID].Add(ledger.Efecto(m, nil))
	}
	return saldos, nil
}
