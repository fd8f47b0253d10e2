package stats

import (
	"regexp"
	"time"
)

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDateSafe interpreta una fecha de factura a prueba de fallos.
//
// Un string de solo fecha (YYYY-MM-DD) se ancla al mediodía local para que
// ningún cambio de zona horaria lo corra al día anterior. Cualquier valor
// ilegible o vacío cae a "ahora": es preferible clasificar mal un registro
// que tumbar todo el tablero por una fecha corrupta.
func ParseDateSafe(s string) time.Time {
	return parseDateSafeAt(s, time.Now())
}

func parseDateSafeAt(s string, now time.Time) time.Time {
	if s == "" {
		return now
	}
	if dateOnlyRe.MatchString(s) {
		if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
			return d.Add(12 * time.Hour)
		}
		return now
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d
	}
	if d, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local); err == nil {
		return d
	}
	return now
}

// inMonth reporta si la fecha cae dentro del mes calendario indicado.
func inMonth(d time.Time, year int, month time.Month) bool {
	return d.Year() == year && d.Month() == month
}

// daysIn devuelve la cantidad de días del mes.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.Local).Day()
}
