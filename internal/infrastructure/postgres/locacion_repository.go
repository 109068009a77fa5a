package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

var _ repository.LocacionRepository = (*LocacionRepo)(nil)

// LocacionRepo lecturas de catálogo de locaciones.
type LocacionRepo struct {
	q Querier
}

// NewLocacionRepository construye el adaptador.
func NewLocacionRepository(q Querier) *LocacionRepo {
	return &LocacionRepo{q: q}
}

// GetByID obtiene una locación del tenant; nil si no existe.
func (r *LocacionRepo) GetByID(ctx context.Context, tenantID, id int64) (*entity.Locacion, error) {
	query := `SELECT id, tenant_id, nombre, activa FROM locaciones WHERE tenant_id = $1 AND id = $2`
	var l entity.Locacion
	err := r.q.QueryRow(ctx, query, tenantID, id).Scan(&l.ID, &l.TenantID, &l.Nombre, &l.Activa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get locación: %w", err)
	}
	return &l, nil
}

// List lista locaciones del tenant ordenadas por nombre.
func (r *LocacionRepo) List(ctx context.Context, tenantID int64) ([]*entity.Locacion, error) {
	query := `SELECT id, tenant_id, nombre, activa FROM locaciones WHERE tenant_id = $1 ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list locaciones: %w", err)
	}
	defer rows.Close()

	var list []*entity.Locacion
	for rows.Next() {
		var l entity.Locacion
		if err := rows.Scan(&l.ID, &l.TenantID, &l.Nombre, &l.Activa); err != nil {
			return nil, fmt.Errorf("scan locación: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
