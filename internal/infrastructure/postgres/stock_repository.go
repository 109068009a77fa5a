package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo lecturas sobre la vista materializada vista_stock_actual y los
// pliegues SQL del ledger. La vista se define plegando la tabla movimientos
// con la misma convención de signos del proyector, por lo que siempre es
// reproducible desde el log completo.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// List filas de la vista, filtrables por producto y/o locación.
func (r *StockRepo) List(ctx context.Context, tenantID int64, productoID, locacionID *int64) ([]*entity.StockActual, error) {
	query := `SELECT tenant_id, producto_id, locacion_id, stock FROM vista_stock_actual WHERE tenant_id = $1`
	args := []any{tenantID}
	pos := 2
	if productoID != nil {
		query += fmt.Sprintf(" AND producto_id = $%d", pos)
		args = append(args, *productoID)
		pos++
	}
	if locacionID != nil {
		query += fmt.Sprintf(" AND locacion_id = $%d", pos)
		args = append(args, *locacionID)
		pos++
	}
	query += " ORDER BY producto_id, locacion_id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockActual
	for rows.Next() {
		var s entity.StockActual
		if err := rows.Scan(&s.TenantID, &s.ProductoID, &s.LocacionID, &s.Stock); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListInventario vista con catálogo unido, orden locación y producto.
func (r *StockRepo) ListInventario(ctx context.Context, tenantID int64) ([]repository.InventarioProductoRow, error) {
	query := `
		SELECT v.locacion_id, l.nombre, l.activa,
		       v.producto_id, p.nombre, COALESCE(p.sku, ''), p.activo,
		       COALESCE(u.abreviatura, ''), v.stock
		FROM vista_stock_actual v
		JOIN locaciones l ON l.id = v.locacion_id
		JOIN productos p ON p.id = v.producto_id
		LEFT JOIN uoms u ON u.id = p.uom_id
		WHERE v.tenant_id = $1
		ORDER BY l.nombre, p.nombre`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()

	var list []repository.InventarioProductoRow
	for rows.Next() {
		var row repository.InventarioProductoRow
		if err := rows.Scan(
			&row.LocacionID, &row.LocacionNombre, &row.LocacionActiva,
			&row.ProductoID, &row.ProductoNombre, &row.SKU, &row.ProductoActivo,
			&row.UOMAbreviatura, &row.Stock,
		); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TotalPorLocacion stock vigente agrupado por locación, orden por nombre.
func (r *StockRepo) TotalPorLocacion(ctx context.Context, tenantID int64) ([]repository.StockPorLocacionRow, error) {
	query := `
		SELECT v.locacion_id, l.nombre, SUM(v.stock)
		FROM vista_stock_actual v
		JOIN locaciones l ON l.id = v.locacion_id
		WHERE v.tenant_id = $1
		GROUP BY v.locacion_id, l.nombre
		ORDER BY l.nombre ASC`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("stock por locación: %w", err)
	}
	defer rows.Close()

	var list []repository.StockPorLocacionRow
	for rows.Next() {
		var row repository.StockPorLocacionRow
		if err := rows.Scan(&row.LocacionID, &row.LocacionNombre, &row.StockTotal); err != nil {
			return nil, fmt.Errorf("scan stock por locación: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TotalPorDia pliega el ledger hasta la fecha (inclusive) por producto.
// Misma convención de signos del proyector, expresada por tipo: acreditan
// destino ingreso/traspaso/ajuste, debitan origen uso/traspaso/ajuste.
func (r *StockRepo) TotalPorDia(ctx context.Context, tenantID int64, fecha time.Time) ([]repository.TotalDiaRow, error) {
	query := `
		SELECT m.producto_id, p.nombre, COALESCE(p.sku, ''),
		       COALESCE(SUM(
		           CASE WHEN m.tipo IN ('ingreso', 'traspaso', 'ajuste') AND m.to_locacion_id IS NOT NULL
		                THEN m.cantidad ELSE 0 END
		         - CASE WHEN m.tipo IN ('uso', 'traspaso', 'ajuste') AND m.from_locacion_id IS NOT NULL
		                THEN m.cantidad ELSE 0 END
		       ), 0)
		FROM movimientos m
		JOIN productos p ON p.id = m.producto_id
		WHERE m.tenant_id = $1 AND (m.fecha AT TIME ZONE 'UTC')::date <= $2::date
		GROUP BY m.producto_id, p.nombre, p.sku
		ORDER BY p.nombre ASC`
	rows, err := r.q.Query(ctx, query, tenantID, fecha.UTC())
	if err != nil {
		return nil, fmt.Errorf("total por día: %w", err)
	}
	defer rows.Close()

	var list []repository.TotalDiaRow
	for rows.Next() {
		var row repository.TotalDiaRow
		if err := rows.Scan(&row.ProductoID, &row.ProductoNombre, &row.SKU, &row.TotalStock); err != nil {
			return nil, fmt.Errorf("scan total por día: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
