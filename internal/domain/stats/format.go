package stats

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatAmount formatea un monto con separador de miles y sin decimales
// forzados: 12500 → "12,500", 12500.5 → "12,500.5".
func formatAmount(d decimal.Decimal) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// FormatMoney formatea con separador de miles y exactamente dos decimales,
// para montos monetarios en reportes: 12500 → "12,500.00".
func FormatMoney(d decimal.Decimal) string {
	return formatAmountFixed(d.Round(2))
}

func formatAmountFixed(d decimal.Decimal) string {
	s := formatAmount(d)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if !hasFrac {
		return intPart + ".00"
	}
	for len(frac) < 2 {
		frac += "0"
	}
	return intPart + "." + frac
}
