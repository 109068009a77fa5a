package weekly

import (
	"time"

	"github.com/bledev-tech/inventario-api/internal/domain/ledger"
)

// Lunes devuelve el lunes de la semana de la fecha dada (fecha UTC).
func Lunes(d time.Time) time.Time {
	d = ledger.DiaUTC(d)
	// time.Weekday: domingo = 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// ResolverVentana traduce (week_start, weeks) al rango [desde, hasta] que
// consume el motor: desde = lunes de la semana pedida, hasta = domingo de la
// última semana. weeks < 1 se normaliza a 1.
func ResolverVentana(weekStart time.Time, weeks int) (desde, hasta time.Time) {
	if weeks < 1 {
		weeks = 1
	}
	desde = Lunes(weekStart)
	hasta = desde.AddDate(0, 0, weeks*7-1)
	return desde, hasta
}
