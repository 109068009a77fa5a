package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `id, tenant_id, fecha, tipo, producto_id, from_locacion_id, to_locacion_id, persona_id, proveedor_id, cantidad, nota`

// MovimientoRepo implementación del ledger sobre PostgreSQL.
// La tabla movimientos es append-only: este repo no expone update ni delete.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create anexa un movimiento y devuelve el id asignado por la secuencia.
// Violaciones de integridad (FK, CHECK de locaciones por tipo) se devuelven
// como domain.ErrConstraint.
func (r *MovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) (int64, error) {
	query := `
		INSERT INTO movimientos (tenant_id, fecha, tipo, producto_id, from_locacion_id, to_locacion_id, persona_id, proveedor_id, cantidad, nota)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''))
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		m.TenantID, m.Fecha, string(m.Tipo), m.ProductoID,
		m.FromLocacionID, m.ToLocacionID, m.PersonaID, m.ProveedorID,
		m.Cantidad, m.Nota,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create movimiento: %w", mapConstraintError(err))
	}
	return id, nil
}

// GetByID obtiene un movimiento por id dentro del tenant.
func (r *MovimientoRepo) GetByID(ctx context.Context, tenantID, id int64) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE tenant_id = $1 AND id = $2`
	m, err := scanMovimiento(r.q.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List lista movimientos con filtros opcionales, orden fecha DESC, id DESC.
func (r *MovimientoRepo) List(ctx context.Context, tenantID int64, f repository.MovimientoFilter) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE tenant_id = $1`
	args := []any{tenantID}
	pos := 2

	if f.ProductoID != nil {
		query += fmt.Sprintf(" AND producto_id = $%d", pos)
		args = append(args, *f.ProductoID)
		pos++
	}
	if f.Tipo != nil {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, string(*f.Tipo))
		pos++
	}
	if f.LocacionID != nil {
		query += fmt.Sprintf(" AND (from_locacion_id = $%d OR to_locacion_id = $%d)", pos, pos)
		args = append(args, *f.LocacionID)
		pos++
	}
	if f.PersonaID != nil {
		query += fmt.Sprintf(" AND persona_id = $%d", pos)
		args = append(args, *f.PersonaID)
		pos++
	}
	if f.ProveedorID != nil {
		query += fmt.Sprintf(" AND proveedor_id = $%d", pos)
		args = append(args, *f.ProveedorID)
		pos++
	}
	if f.Desde != nil {
		query += fmt.Sprintf(" AND (fecha AT TIME ZONE 'UTC')::date >= $%d::date", pos)
		args = append(args, f.Desde.UTC())
		pos++
	}
	if f.Hasta != nil {
		query += fmt.Sprintf(" AND (fecha AT TIME ZONE 'UTC')::date <= $%d::date", pos)
		args = append(args, f.Hasta.UTC())
		pos++
	}

	query += fmt.Sprintf(" ORDER BY fecha DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return collectMovimientos(rows)
}

// ListByProductos devuelve los movimientos de los productos dados dentro del
// rango de fechas UTC, orden fecha ASC, id ASC (orden de reproducción del
// ledger).
func (r *MovimientoRepo) ListByProductos(ctx context.Context, tenantID int64, productoIDs []int64, desde, hasta *time.Time) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE tenant_id = $1 AND producto_id = ANY($2)`
	args := []any{tenantID, productoIDs}
	pos := 3
	if desde != nil {
		query += fmt.Sprintf(" AND (fecha AT TIME ZONE 'UTC')::date >= $%d::date", pos)
		args = append(args, desde.UTC())
		pos++
	}
	if hasta != nil {
		query += fmt.Sprintf(" AND (fecha AT TIME ZONE 'UTC')::date <= $%d::date", pos)
		args = append(args, hasta.UTC())
		pos++
	}
	query += " ORDER BY fecha ASC, id ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por producto: %w", err)
	}
	defer rows.Close()
	return collectMovimientos(rows)
}

// scanMovimiento escanea una fila con movimientoColumns.
func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var tipo string
	var nota *string
	err := row.Scan(
		&m.ID, &m.TenantID, &m.Fecha, &tipo, &m.ProductoID,
		&m.FromLocacionID, &m.ToLocacionID, &m.PersonaID, &m.ProveedorID,
		&m.Cantidad, &nota,
	)
	if err != nil {
		return nil, err
	}
	m.Tipo = entity.TipoMovimiento(tipo)
	if nota != nil {
		m.Nota = *nota
	}
	return &m, nil
}

func collectMovimientos(rows pgx.Rows) ([]*entity.Movimiento, error) {
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
