package dto

import "github.com/shopspring/decimal"

// StockItemDTO fila de la vista de stock vigente.
type StockItemDTO struct {
	ProductoID int64           `json:"producto_id"`
	LocacionID int64           `json:"locacion_id"`
	Stock      decimal.Decimal `json:"stock"`
}

// BalanceDTO saldo puntual calculado desde el ledger.
type BalanceDTO struct {
	ProductoID int64           `json:"producto_id"`
	LocacionID *int64          `json:"locacion_id,omitempty"`
	Fecha      *string         `json:"fecha,omitempty"` // corte YYYY-MM-DD; nulo = saldo actual
	Saldo      decimal.Decimal `json:"saldo"`
}

// InventarioProductoDTO producto dentro del inventario de una locación.
type InventarioProductoDTO struct {
	ProductoID int64           `json:"producto_id"`
	Nombre     string          `json:"producto_nombre"`
	SKU        string          `json:"sku,omitempty"`
	Activo     bool            `json:"activo"`
	UOM        string          `json:"uom,omitempty"`
	Stock      decimal.Decimal `json:"stock"`
}

// InventarioLocacionDTO inventario vigente agrupado por locación.
type InventarioLocacionDTO struct {
	LocacionID int64                   `json:"locacion_id"`
	Nombre     string                  `json:"locacion_nombre"`
	Activa     bool                    `json:"activa"`
	TotalStock decimal.Decimal         `json:"total_stock"`
	Items      []InventarioProductoDTO `json:"items"`
}

// StockPorLocacionDTO resumen de stock por locación para el dashboard.
type StockPorLocacionDTO struct {
	LocacionID int64           `json:"locacion_id"`
	Nombre     string          `json:"locacion_nombre"`
	StockTotal decimal.Decimal `json:"stock_total"`
}

// InventarioTotalProductoDTO total acumulado de un producto hasta una fecha.
type InventarioTotalProductoDTO struct {
	ProductoID int64           `json:"producto_id"`
	Nombre     string          `json:"producto_nombre"`
	SKU        string          `json:"sku,omitempty"`
	TotalStock decimal.Decimal `json:"total_stock"`
}

// InventarioTotalDiaDTO inventario acumulado a una fecha de corte.
type InventarioTotalDiaDTO struct {
	Fecha          string                       `json:"fecha"`
	TotalStock     decimal.Decimal              `json:"total_stock"`
	TotalProductos int                          `json:"total_productos"`
	Items          []InventarioTotalProductoDTO `json:"items"`
}
