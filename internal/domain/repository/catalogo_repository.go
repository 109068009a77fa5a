package repository

import (
	"context"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
)

// Los datos de referencia (productos, locaciones, categorías, etc.) se
// administran en otro sistema; este servicio solo necesita lecturas.

// ProductoRepository define las lecturas de catálogo de productos.
type ProductoRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*entity.Producto, error)
	// ListActivos devuelve los productos activos del tenant, opcionalmente
	// restringidos por categorías y/o por IDs explícitos, ordenados por id ASC.
	ListActivos(ctx context.Context, tenantID int64, categoriaIDs, productoIDs []int64) ([]*entity.Producto, error)
}

// LocacionRepository define las lecturas de catálogo de locaciones.
type LocacionRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*entity.Locacion, error)
	List(ctx context.Context, tenantID int64) ([]*entity.Locacion, error)
}
