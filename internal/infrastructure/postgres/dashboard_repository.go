package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only del agregador de KPIs.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountMovimientos totales y productos distintos desde la fecha dada.
func (r *DashboardRepo) CountMovimientos(ctx context.Context, tenantID int64, desde time.Time) (int, int, error) {
	query := `
		SELECT COUNT(id), COUNT(DISTINCT producto_id)
		FROM movimientos WHERE tenant_id = $1 AND fecha >= $2`
	var total, distintos int
	if err := r.q.QueryRow(ctx, query, tenantID, desde).Scan(&total, &distintos); err != nil {
		return 0, 0, fmt.Errorf("count movimientos: %w", err)
	}
	return total, distintos, nil
}

// CountPorTipo conteo por tipo, restringido a los tipos dados.
func (r *DashboardRepo) CountPorTipo(ctx context.Context, tenantID int64, desde time.Time, tipos []entity.TipoMovimiento) (map[entity.TipoMovimiento]int, error) {
	tipoStrs := make([]string, 0, len(tipos))
	for _, t := range tipos {
		tipoStrs = append(tipoStrs, string(t))
	}
	query := `
		SELECT tipo, COUNT(id)
		FROM movimientos
		WHERE tenant_id = $1 AND fecha >= $2 AND tipo = ANY($3)
		GROUP BY tipo`
	rows, err := r.q.Query(ctx, query, tenantID, desde, tipoStrs)
	if err != nil {
		return nil, fmt.Errorf("count por tipo: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.TipoMovimiento]int, len(tipos))
	for _, t := range tipos {
		counts[t] = 0
	}
	for rows.Next() {
		var tipo string
		var n int
		if err := rows.Scan(&tipo, &n); err != nil {
			return nil, fmt.Errorf("scan count por tipo: %w", err)
		}
		counts[entity.TipoMovimiento(tipo)] = n
	}
	return counts, rows.Err()
}

// TopUsados suma cantidades de usos por producto, orden total DESC, nombre ASC.
func (r *DashboardRepo) TopUsados(ctx context.Context, tenantID int64, desde time.Time, limit int) ([]repository.TopUsadoRow, error) {
	query := `
		SELECT m.producto_id, p.nombre, SUM(m.cantidad)
		FROM movimientos m
		JOIN productos p ON p.id = m.producto_id
		WHERE m.tenant_id = $1 AND m.fecha >= $2 AND m.tipo = 'uso'
		GROUP BY m.producto_id, p.nombre
		ORDER BY SUM(m.cantidad) DESC, p.nombre ASC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, tenantID, desde, limit)
	if err != nil {
		return nil, fmt.Errorf("top usados: %w", err)
	}
	defer rows.Close()

	var list []repository.TopUsadoRow
	for rows.Next() {
		var row repository.TopUsadoRow
		if err := rows.Scan(&row.ProductoID, &row.ProductoNombre, &row.TotalUsado); err != nil {
			return nil, fmt.Errorf("scan top usados: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// AjustesPorProducto conteo de ajustes por producto, orden conteo DESC, nombre ASC.
func (r *DashboardRepo) AjustesPorProducto(ctx context.Context, tenantID int64, desde time.Time, top int) ([]repository.AjusteProductoRow, error) {
	query := `
		SELECT m.producto_id, p.nombre, COUNT(m.id)
		FROM movimientos m
		JOIN productos p ON p.id = m.producto_id
		WHERE m.tenant_id = $1 AND m.fecha >= $2 AND m.tipo = 'ajuste'
		GROUP BY m.producto_id, p.nombre
		ORDER BY COUNT(m.id) DESC, p.nombre ASC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, tenantID, desde, top)
	if err != nil {
		return nil, fmt.Errorf("ajustes por producto: %w", err)
	}
	defer rows.Close()

	var list []repository.AjusteProductoRow
	for rows.Next() {
		var row repository.AjusteProductoRow
		if err := rows.Scan(&row.ProductoID, &row.ProductoNombre, &row.Ajustes); err != nil {
			return nil, fmt.Errorf("scan ajustes por producto: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// AjustesPorLocacion conteo de ajustes que tocan cada locación. El UNION
// (sin ALL) de los pares (movimiento, locación) garantiza que un ajuste con
// la misma locación como origen y destino cuente una sola vez.
func (r *DashboardRepo) AjustesPorLocacion(ctx context.Context, tenantID int64, desde time.Time, top int) ([]repository.AjusteLocacionRow, error) {
	query := `
		WITH ajuste_locaciones AS (
			SELECT id AS movimiento_id, from_locacion_id AS locacion_id
			FROM movimientos
			WHERE tenant_id = $1 AND fecha >= $2 AND tipo = 'ajuste' AND from_locacion_id IS NOT NULL
			UNION
			SELECT id, to_locacion_id
			FROM movimientos
			WHERE tenant_id = $1 AND fecha >= $2 AND tipo = 'ajuste' AND to_locacion_id IS NOT NULL
		)
		SELECT l.id, l.nombre, COUNT(*)
		FROM ajuste_locaciones al
		JOIN locaciones l ON l.id = al.locacion_id
		GROUP BY l.id, l.nombre
		ORDER BY COUNT(*) DESC, l.nombre ASC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, tenantID, desde, top)
	if err != nil {
		return nil, fmt.Errorf("ajustes por locación: %w", err)
	}
	defer rows.Close()

	var list []repository.AjusteLocacionRow
	for rows.Next() {
		var row repository.AjusteLocacionRow
		if err := rows.Scan(&row.LocacionID, &row.LocacionNombre, &row.Ajustes); err != nil {
			return nil, fmt.Errorf("scan ajustes por locación: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Recientes feed de movimientos con nombres unidos, orden fecha DESC, id DESC.
func (r *DashboardRepo) Recientes(ctx context.Context, tenantID int64, f repository.MovimientoFilter) ([]repository.MovimientoDetalleRow, error) {
	query := `
		SELECT m.id, m.fecha, m.tipo, p.nombre,
		       lf.nombre, lt.nombre, pe.nombre, pr.nombre,
		       m.cantidad, COALESCE(m.nota, '')
		FROM movimientos m
		JOIN productos p ON p.id = m.producto_id
		LEFT JOIN locaciones lf ON lf.id = m.from_locacion_id
		LEFT JOIN locaciones lt ON lt.id = m.to_locacion_id
		LEFT JOIN personas pe ON pe.id = m.persona_id
		LEFT JOIN proveedores pr ON pr.id = m.proveedor_id
		WHERE m.tenant_id = $1`
	args := []any{tenantID}
	pos := 2
	if f.Tipo != nil {
		query += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, string(*f.Tipo))
		pos++
	}
	if f.ProductoID != nil {
		query += fmt.Sprintf(" AND m.producto_id = $%d", pos)
		args = append(args, *f.ProductoID)
		pos++
	}
	if f.LocacionID != nil {
		query += fmt.Sprintf(" AND (m.from_locacion_id = $%d OR m.to_locacion_id = $%d)", pos, pos)
		args = append(args, *f.LocacionID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.fecha DESC, m.id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("movimientos recientes: %w", err)
	}
	defer rows.Close()

	var list []repository.MovimientoDetalleRow
	for rows.Next() {
		var row repository.MovimientoDetalleRow
		var tipo string
		if err := rows.Scan(
			&row.ID, &row.Fecha, &tipo, &row.ProductoNombre,
			&row.FromLocacion, &row.ToLocacion, &row.PersonaNombre, &row.ProveedorNombre,
			&row.Cantidad, &row.Nota,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento reciente: %w", err)
		}
		row.Tipo = entity.TipoMovimiento(tipo)
		list = append(list, row)
	}
	return list, rows.Err()
}
