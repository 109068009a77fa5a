package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bledev-tech/inventario-api/internal/domain/entity"
)

// DiaUTC normaliza un instante a su fecha calendario UTC (medianoche).
// Todos los cortes "hasta tal fecha" del proyector usan esta granularidad.
func DiaUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EntradaSalida devuelve la contribución de un movimiento como magnitudes
// separadas (entrada, salida), acotada a una locación si locacionID != nil.
// La convención de signos es la única del sistema:
//   - suma en destino si el tipo acredita destino y el destino viene informado;
//   - resta de origen si el tipo debita origen y el origen viene informado.
func EntradaSalida(m *entity.Movimiento, locacionID *int64) (entrada, salida decimal.Decimal) {
	entrada, salida = decimal.Zero, decimal.Zero
	if m.Tipo.AcreditaDestino() && m.ToLocacionID != nil {
		if locacionID == nil || *m.ToLocacionID == *locacionID {
			entrada = m.Cantidad
		}
	}
	if m.Tipo.DebitaOrigen() && m.FromLocacionID != nil {
		if locacionID == nil || *m.FromLocacionID == *locacionID {
			salida = m.Cantidad
		}
	}
	return entrada, salida
}

// Efecto devuelve la contribución neta con signo de un movimiento al saldo
// de una locación (o al total del producto si locacionID es nil). Un traspaso
// visto a nivel producto entra y sale a la vez: neto cero.
func Efecto(m *entity.Movimiento, locacionID *int64) decimal.Decimal {
	entrada, salida := EntradaSalida(m, locacionID)
	return entrada.Sub(salida)
}
