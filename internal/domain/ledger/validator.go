// Package ledger contiene las reglas puras del ledger de inventario:
// la validación estructural de movimientos y la convención de signos que
// comparten el proyector de saldos y los agregadores.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/domain"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
)

// reglaLocaciones describe qué combinación de locaciones admite cada tipo.
type reglaLocaciones struct {
	FromRequerida bool
	ToRequerida   bool
	FromProhibida bool
	ToProhibida   bool
	AlMenosUna    bool
}

// Tabla de reglas por tipo. Un tipo nuevo sin entrada aquí se rechaza.
var reglas = map[entity.TipoMovimiento]reglaLocaciones{
	entity.TipoIngreso:  {ToRequerida: true, FromProhibida: true},
	entity.TipoTraspaso: {FromRequerida: true, ToRequerida: true},
	// Gate primario: los usos no aceptan destino. El CHECK de la tabla solo
	// exige origen (respaldo defensivo), pero la aplicación mantiene la regla
	// estricta; ver DESIGN.md.
	entity.TipoUso:    {FromRequerida: true, ToProhibida: true},
	entity.TipoAjuste: {AlMenosUna: true},
}

// ValidarMovimiento decide si la combinación de campos de un movimiento es
// estructuralmente coherente para su tipo. Función pura, sin I/O; un
// movimiento que no pasa esta validación jamás debe llegar al store.
func ValidarMovimiento(tipo entity.TipoMovimiento, fromLocacionID, toLocacionID *int64, cantidad decimal.Decimal) error {
	regla, ok := reglas[tipo]
	if !ok {
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Campo: "tipo", Motivo: "tipo de movimiento desconocido"}
	}

	if err := validarCantidad(tipo, cantidad); err != nil {
		return err
	}

	switch {
	case regla.FromRequerida && fromLocacionID == nil:
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Campo: "from_locacion_id", Motivo: "locación origen requerida"}
	case regla.ToRequerida && toLocacionID == nil:
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Campo: "to_locacion_id", Motivo: "locación destino requerida"}
	case regla.FromProhibida && fromLocacionID != nil:
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Campo: "from_locacion_id", Motivo: "locación origen no permitida"}
	case regla.ToProhibida && toLocacionID != nil:
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Campo: "to_locacion_id", Motivo: "locación destino no permitida"}
	case regla.AlMenosUna && fromLocacionID == nil && toLocacionID == nil:
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Motivo: "se requiere al menos una locación"}
	}

	if tipo == entity.TipoTraspaso && *fromLocacionID == *toLocacionID {
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Campo: "to_locacion_id", Motivo: "origen y destino deben ser distintos"}
	}
	return nil
}

// validarCantidad exige cantidad estrictamente positiva con a lo sumo
// 3 decimales (Numeric(14,3) en la tabla).
func validarCantidad(tipo entity.TipoMovimiento, cantidad decimal.Decimal) error {
	if !cantidad.IsPositive() {
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Campo: "cantidad", Motivo: "la cantidad debe ser mayor que cero"}
	}
	if cantidad.Exponent() < -3 && !cantidad.Equal(cantidad.Round(3)) {
		return &domain.MovimientoInvalidoError{Tipo: string(tipo), Campo: "cantidad", Motivo: "máximo 3 decimales"}
	}
	return nil
}
