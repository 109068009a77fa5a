package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo lecturas de catálogo de productos (el CRUD vive fuera de este
// servicio).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// GetByID obtiene un producto del tenant; nil si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, tenantID, id int64) (*entity.Producto, error) {
	query := `
		SELECT id, tenant_id, COALESCE(sku, ''), nombre, activo, marca_id, categoria_id, uom_id
		FROM productos WHERE tenant_id = $1 AND id = $2`
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, tenantID, id).Scan(
		&p.ID, &p.TenantID, &p.SKU, &p.Nombre, &p.Activo, &p.MarcaID, &p.CategoriaID, &p.UOMID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListActivos lista productos activos del tenant, restringidos por categorías
// y/o IDs si se informan, orden id ASC.
func (r *ProductoRepo) ListActivos(ctx context.Context, tenantID int64, categoriaIDs, productoIDs []int64) ([]*entity.Producto, error) {
	query := `
		SELECT id, tenant_id, COALESCE(sku, ''), nombre, activo, marca_id, categoria_id, uom_id
		FROM productos WHERE tenant_id = $1 AND activo`
	args := []any{tenantID}
	pos := 2
	if len(categoriaIDs) > 0 {
		query += fmt.Sprintf(" AND categoria_id = ANY($%d)", pos)
		args = append(args, categoriaIDs)
		pos++
	}
	if len(productoIDs) > 0 {
		query += fmt.Sprintf(" AND id = ANY($%d)", pos)
		args = append(args, productoIDs)
		pos++
	}
	query += " ORDER BY id ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.TenantID, &p.SKU, &p.Nombre, &p.Activo, &p.MarcaID, &p.CategoriaID, &p.UOMID); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
