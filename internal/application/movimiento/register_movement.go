// Package movimiento contiene el caso de uso de escritura del ledger:
// validar y anexar movimientos inmutables.
package movimiento

import (
	"context"
	"fmt"
	"time"

	"github.com/bledev-tech/inventario-api/internal/application/dto"
	"github.com/bledev-tech/inventario-api/internal/domain"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/ledger"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

// RegisterMovementUseCase valida y anexa movimientos al ledger.
// El validador estructural corre siempre antes de tocar el store; la
// restricción de la tabla queda como respaldo, no como gate primario.
type RegisterMovementUseCase struct {
	movRepo      repository.MovimientoRepository
	productoRepo repository.ProductoRepository
	locacionRepo repository.LocacionRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	locacionRepo repository.LocacionRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		movRepo:      movRepo,
		productoRepo: productoRepo,
		locacionRepo: locacionRepo,
	}
}

// Register valida el movimiento, verifica las referencias de catálogo y lo
// anexa. Devuelve el movimiento persistido con su ID asignado.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, tenantID int64, in dto.RegistrarMovimientoRequest) (*entity.Movimiento, error) {
	tipo := entity.TipoMovimiento(in.Tipo)
	if err := ledger.ValidarMovimiento(tipo, in.FromLocacionID, in.ToLocacionID, in.Cantidad); err != nil {
		return nil, err
	}

	// Referencias de catálogo: producto y locaciones informadas deben existir
	// y pertenecer al tenant.
	producto, err := uc.productoRepo.GetByID(ctx, tenantID, in.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("verificar producto: %w", err)
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	for _, locID := range []*int64{in.FromLocacionID, in.ToLocacionID} {
		if locID == nil {
			continue
		}
		loc, err := uc.locacionRepo.GetByID(ctx, tenantID, *locID)
		if err != nil {
			return nil, fmt.Errorf("verificar locación: %w", err)
		}
		if loc == nil {
			return nil, domain.ErrNotFound
		}
	}

	fecha := time.Now().UTC()
	if in.Fecha != nil {
		fecha = in.Fecha.UTC()
	}
	m := &entity.Movimiento{
		TenantID:       tenantID,
		Fecha:          fecha,
		Tipo:           tipo,
		ProductoID:     in.ProductoID,
		FromLocacionID: in.FromLocacionID,
		ToLocacionID:   in.ToLocacionID,
		PersonaID:      in.PersonaID,
		ProveedorID:    in.ProveedorID,
		Cantidad:       in.Cantidad,
		Nota:           in.Nota,
	}

	id, err := uc.movRepo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

// List devuelve movimientos del tenant con los filtros dados,
// orden fecha DESC, id DESC.
func (uc *RegisterMovementUseCase) List(ctx context.Context, tenantID int64, f repository.MovimientoFilter) ([]*entity.Movimiento, error) {
	return uc.movRepo.List(ctx, tenantID, f)
}
