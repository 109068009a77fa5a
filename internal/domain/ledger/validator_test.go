package ledger_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bledev-tech/inventario-api/internal/domain"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/ledger"
)

func ptrInt64(v int64) *int64 { return &v }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Combinaciones válidas de locaciones por tipo.
func TestValidarMovimiento_CombinacionesValidas(t *testing.T) {
	casos := []struct {
		nombre string
		tipo   entity.TipoMovimiento
		from   *int64
		to     *int64
	}{
		{"ingreso con destino", entity.TipoIngreso, nil, ptrInt64(2)},
		{"traspaso entre locaciones distintas", entity.TipoTraspaso, ptrInt64(1), ptrInt64(2)},
		{"uso con origen", entity.TipoUso, ptrInt64(1), nil},
		{"ajuste solo origen", entity.TipoAjuste, ptrInt64(1), nil},
		{"ajuste solo destino", entity.TipoAjuste, nil, ptrInt64(2)},
		{"ajuste ambas locaciones", entity.TipoAjuste, ptrInt64(1), ptrInt64(2)},
		{"ajuste misma locación en ambos lados", entity.TipoAjuste, ptrInt64(1), ptrInt64(1)},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := ledger.ValidarMovimiento(c.tipo, c.from, c.to, dec("5"))
			assert.NoError(t, err)
		})
	}
}

// Combinaciones inválidas: faltantes, prohibidas y tipos desconocidos.
func TestValidarMovimiento_CombinacionesInvalidas(t *testing.T) {
	casos := []struct {
		nombre string
		tipo   entity.TipoMovimiento
		from   *int64
		to     *int64
	}{
		{"ingreso sin destino", entity.TipoIngreso, nil, nil},
		{"ingreso con origen", entity.TipoIngreso, ptrInt64(1), ptrInt64(2)},
		{"traspaso sin origen", entity.TipoTraspaso, nil, ptrInt64(2)},
		{"traspaso sin destino", entity.TipoTraspaso, ptrInt64(1), nil},
		{"traspaso misma locación", entity.TipoTraspaso, ptrInt64(1), ptrInt64(1)},
		{"uso sin origen", entity.TipoUso, nil, nil},
		{"uso con destino", entity.TipoUso, ptrInt64(1), ptrInt64(2)},
		{"ajuste sin locaciones", entity.TipoAjuste, nil, nil},
		{"tipo desconocido", entity.TipoMovimiento("venta"), ptrInt64(1), nil},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := ledger.ValidarMovimiento(c.tipo, c.from, c.to, dec("5"))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput,
				"todo error de validación debe envolver ErrInvalidInput")

			var movErr *domain.MovimientoInvalidoError
			assert.ErrorAs(t, err, &movErr)
		})
	}
}

// La cantidad debe ser estrictamente positiva y con a lo sumo 3 decimales.
func TestValidarMovimiento_Cantidad(t *testing.T) {
	casos := []struct {
		nombre   string
		cantidad decimal.Decimal
		valida   bool
	}{
		{"entera positiva", dec("10"), true},
		{"tres decimales", dec("0.125"), true},
		{"cero", dec("0"), false},
		{"negativa", dec("-1"), false},
		{"cuatro decimales", dec("1.0001"), false},
		{"cuatro decimales con ceros a la derecha", dec("1.2500"), true},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := ledger.ValidarMovimiento(entity.TipoIngreso, nil, ptrInt64(1), c.cantidad)
			if c.valida {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			}
		})
	}
}

// El detalle del error nombra el campo problemático.
func TestValidarMovimiento_DetalleDelError(t *testing.T) {
	err := ledger.ValidarMovimiento(entity.TipoUso, ptrInt64(1), ptrInt64(2), dec("3"))
	require.Error(t, err)

	var movErr *domain.MovimientoInvalidoError
	require.ErrorAs(t, err, &movErr)
	assert.Equal(t, "uso", movErr.Tipo)
	assert.Equal(t, "to_locacion_id", movErr.Campo)
}
