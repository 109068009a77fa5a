package entity

import "github.com/shopspring/decimal"

// StockActual representa una fila de la vista materializada de stock vigente
// por (producto, locación). Es un atajo derivable reproduciendo el ledger
// completo; nunca es fuente de verdad por sí misma.
type StockActual struct {
	TenantID   int64
	ProductoID int64
	LocacionID int64
	Stock      decimal.Decimal
}
