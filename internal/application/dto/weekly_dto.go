package dto

import "github.com/shopspring/decimal"

// DiaSerieDTO tupla diaria de la reconstrucción por ventana.
type DiaSerieDTO struct {
	Fecha          string          `json:"fecha"` // YYYY-MM-DD
	Entradas       decimal.Decimal `json:"entradas"`
	Salidas        decimal.Decimal `json:"salidas"`
	Neto           decimal.Decimal `json:"neto"`
	SaldoAcumulado decimal.Decimal `json:"saldo_acumulado"`
}

// ProductoSerieDTO serie diaria de un producto dentro de la ventana.
type ProductoSerieDTO struct {
	ProductoID   int64           `json:"producto_id"`
	Nombre       string          `json:"producto_nombre"`
	SKU          string          `json:"sku,omitempty"`
	CategoriaID  *int64          `json:"categoria_id,omitempty"`
	StockInicial decimal.Decimal `json:"stock_inicial"` // saldo estrictamente anterior a la ventana
	Dias         []DiaSerieDTO   `json:"dias"`
	StockFinal   decimal.Decimal `json:"stock_final"`
	Variacion    decimal.Decimal `json:"variacion"` // stock_final - stock_inicial
}

// SerieTotalesDTO totales agregados de los productos incluidos.
type SerieTotalesDTO struct {
	Productos     int             `json:"productos"`
	StockInicial  decimal.Decimal `json:"stock_inicial"`
	StockFinal    decimal.Decimal `json:"stock_final"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSalidas  decimal.Decimal `json:"total_salidas"`
}

// SerieSemanalResponse respuesta de GET /api/v1/weekly-stock.
type SerieSemanalResponse struct {
	Desde   string             `json:"desde"`
	Hasta   string             `json:"hasta"`
	Items   []ProductoSerieDTO `json:"items"`
	Totales SerieTotalesDTO    `json:"totales"`
}
