package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoMovimiento identifica el tipo de un movimiento de inventario.
// Es un conjunto cerrado: todo consumidor (validador, proyector, agregador)
// debe resolver explícitamente cada variante.
type TipoMovimiento string

// Tipos de movimiento del ledger.
const (
	TipoIngreso  TipoMovimiento = "ingreso"  // entrada a una locación destino
	TipoTraspaso TipoMovimiento = "traspaso" // entre dos locaciones distintas
	TipoUso      TipoMovimiento = "uso"      // consumo desde una locación origen
	TipoAjuste   TipoMovimiento = "ajuste"   // corrección; al menos una locación
)

// Tipos devuelve todos los tipos válidos en orden estable.
func Tipos() []TipoMovimiento {
	return []TipoMovimiento{TipoIngreso, TipoTraspaso, TipoUso, TipoAjuste}
}

// Valido indica si el tipo pertenece al conjunto cerrado.
func (t TipoMovimiento) Valido() bool {
	switch t {
	case TipoIngreso, TipoTraspaso, TipoUso, TipoAjuste:
		return true
	}
	return false
}

// AcreditaDestino indica si el tipo suma cantidad en la locación destino
// cuando ésta viene informada.
func (t TipoMovimiento) AcreditaDestino() bool {
	switch t {
	case TipoIngreso, TipoTraspaso, TipoAjuste:
		return true
	case TipoUso:
		return false
	}
	return false
}

// DebitaOrigen indica si el tipo resta cantidad de la locación origen
// cuando ésta viene informada.
func (t TipoMovimiento) DebitaOrigen() bool {
	switch t {
	case TipoUso, TipoTraspaso, TipoAjuste:
		return true
	case TipoIngreso:
		return false
	}
	return false
}

// Movimiento representa un evento inmutable del ledger de inventario.
// Una vez persistido nunca se edita ni se borra; las correcciones se
// registran como un ajuste compensatorio.
type Movimiento struct {
	ID             int64
	TenantID       int64
	Fecha          time.Time // con zona horaria; default now() al crear
	Tipo           TipoMovimiento
	ProductoID     int64
	FromLocacionID *int64
	ToLocacionID   *int64
	PersonaID      *int64
	ProveedorID    *int64
	Cantidad       decimal.Decimal // magnitud positiva, Numeric(14,3)
	Nota           string
}
