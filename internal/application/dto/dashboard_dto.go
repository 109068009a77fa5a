package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoPorcentajeDTO conteo y porcentaje de un tipo dentro del ratio ingreso/uso.
type TipoPorcentajeDTO struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DashboardSummaryDTO respuesta de GET /api/v1/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalMovimientos7d        int                          `json:"total_movimientos_7d"`
	ProductosDistintos7d      int                          `json:"productos_distintos_7d"`
	RatioIngresoUso7d         map[string]TipoPorcentajeDTO `json:"ratio_ingreso_uso_7d"`
	Ajustes30d                int                          `json:"ajustes_30d"`
}

// TopUsadoDTO producto más consumido en la ventana.
type TopUsadoDTO struct {
	ProductoID int64           `json:"producto_id"`
	Nombre     string          `json:"producto_nombre"`
	TotalUsado decimal.Decimal `json:"total_usado"`
}

// TopUsadosResponse respuesta de GET /api/v1/dashboard/top-usados.
type TopUsadosResponse struct {
	Items []TopUsadoDTO `json:"items"`
	Days  int           `json:"days"`
	Limit int           `json:"limit"`
}

// AjusteProductoDTO producto con más ajustes.
type AjusteProductoDTO struct {
	ProductoID int64  `json:"producto_id"`
	Nombre     string `json:"producto_nombre"`
	Ajustes    int    `json:"ajustes_count"`
}

// AjusteLocacionDTO locación con más ajustes.
type AjusteLocacionDTO struct {
	LocacionID int64  `json:"locacion_id"`
	Nombre     string `json:"locacion_nombre"`
	Ajustes    int    `json:"ajustes_count"`
}

// AjustesMonitorResponse respuesta de GET /api/v1/dashboard/ajustes.
type AjustesMonitorResponse struct {
	TotalAjustes  int                 `json:"total_ajustes"`
	TopProductos  []AjusteProductoDTO `json:"top_productos"`
	TopLocaciones []AjusteLocacionDTO `json:"top_locaciones"`
	Days          int                 `json:"days"`
}

// MovimientoRecienteDTO movimiento enriquecido con nombres de catálogo.
type MovimientoRecienteDTO struct {
	ID              int64           `json:"id"`
	Fecha           time.Time       `json:"fecha"`
	Tipo            string          `json:"tipo"`
	ProductoNombre  string          `json:"producto_nombre"`
	FromLocacion    *string         `json:"from_locacion_nombre,omitempty"`
	ToLocacion      *string         `json:"to_locacion_nombre,omitempty"`
	PersonaNombre   *string         `json:"persona_nombre,omitempty"`
	ProveedorNombre *string         `json:"proveedor_nombre,omitempty"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	Nota            string          `json:"nota,omitempty"`
}

// MovimientosRecientesResponse respuesta paginada del feed de movimientos.
type MovimientosRecientesResponse struct {
	Items  []MovimientoRecienteDTO `json:"items"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}

// StockLocacionesResponse respuesta de GET /api/v1/dashboard/stock-locaciones.
type StockLocacionesResponse struct {
	Items []StockPorLocacionDTO `json:"items"`
}
