package stats

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthName devuelve el nombre del mes en español, en minúsculas.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// MonthLabel devuelve una etiqueta legible del período, ej: "Agosto 2026".
func MonthLabel(year int, m time.Month) string {
	name := MonthName(m)
	return fmt.Sprintf("%s%s %d", strings.ToUpper(name[:1]), name[1:], year)
}

// Narrative arma el resumen ejecutivo del mes a partir de los agregados:
// fuente líder de ingresos, cliente más activo y ganancia promedio por
// factura. sellerName personaliza el cierre; vacío usa un genérico.
func Narrative(m MonthStats, sellerName string) string {
	if m.InvoiceCount == 0 {
		return "No hay suficiente actividad registrada este mes para generar un análisis estratégico."
	}

	firstName := "el vendedor"
	if sellerName != "" {
		firstName = strings.Fields(sellerName)[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "En el mes de %s, se logró un total de ventas de $%s.",
		MonthName(m.Month), formatAmount(m.TotalSales))

	if len(m.Ranking) > 0 && m.Ranking[0].Commission.IsPositive() {
		winner := m.Ranking[0]
		fmt.Fprintf(&b, " El mayor rendimiento provino de %q, que generó $%s en comisiones.",
			winner.Name, formatAmount(winner.Commission))
	}
	if m.TopClient != nil {
		fmt.Fprintf(&b, " El cliente más activo fue %s, aportando $%s al volumen de ventas.",
			m.TopClient.Name, formatAmount(m.TopClient.Amount))
	}
	fmt.Fprintf(&b, " En promedio, cada factura generó una ganancia de $%s para %s.",
		formatAmount(m.AvgPerInvoice.Round(0)), firstName)
	return b.String()
}
