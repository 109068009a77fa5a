package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrConstraint indica que la base de datos rechazó la escritura por una
	// restricción de integridad (respaldo defensivo de las reglas del validador).
	ErrConstraint = errors.New("restricción de integridad violada")
	// ErrAggregation es el fallo genérico de las consultas de agregación.
	// Las lecturas son idempotentes: el caller puede reintentar la consulta completa.
	ErrAggregation = errors.New("error consultando datos agregados")
)

// MovimientoInvalidoError detalla por qué un movimiento no pasó la validación
// estructural. Envuelve ErrInvalidInput para errors.Is.
type MovimientoInvalidoError struct {
	Tipo   string
	Campo  string // campo faltante o prohibido; vacío si aplica al movimiento entero
	Motivo string
}

func (e *MovimientoInvalidoError) Error() string {
	if e.Campo == "" {
		return fmt.Sprintf("movimiento %s inválido: %s", e.Tipo, e.Motivo)
	}
	return fmt.Sprintf("movimiento %s inválido (%s): %s", e.Tipo, e.Campo, e.Motivo)
}

func (e *MovimientoInvalidoError) Unwrap() error { return ErrInvalidInput }
