// Package stats agrega facturas ya persistidas en cubetas de tiempo para los
// tableros (día, mes, año, cliente, producto). Todo es recomputación pura
// sobre el snapshot que recibe cada función; no hay caché ni estado: volver a
// computar desde la lista completa es siempre seguro.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/domain/entity"
)

// RestCategoryName es la categoría sintética del residual en los rankings.
const RestCategoryName = "Resto de Productos"

// UnknownClientName etiqueta facturas cuyo cliente no aparece en el catálogo.
const UnknownClientName = "Cliente Desconocido"

// DayBucket acumula las facturas de un día calendario.
type DayBucket struct {
	Day        int
	Date       time.Time
	Sales      decimal.Decimal
	Commission decimal.Decimal
	Count      int
}

// ClientTotal acumula el volumen de compra de un cliente.
type ClientTotal struct {
	ClientID string
	Name     string
	Amount   decimal.Decimal
	Count    int
}

// SourceTotal es una fuente de ingreso en el ranking: un producto del
// catálogo o la categoría sintética del resto.
type SourceTotal struct {
	Name       string
	IsRest     bool
	Sales      decimal.Decimal
	Commission decimal.Decimal
}

// MonthStats es la vista mensual completa.
type MonthStats struct {
	Year  int
	Month time.Month

	TotalSales      decimal.Decimal
	TotalCommission decimal.Decimal
	InvoiceCount    int
	AvgPerInvoice   decimal.Decimal

	Days    []DayBucket // una cubeta por día calendario del mes
	BestDay DayBucket   // máxima comisión; empates los gana el primer día

	TopClient     *ClientTotal // nil si ninguna factura tiene cliente
	Ranking       []SourceTotal
	RecordInvoice *entity.Invoice // factura de mayor monto del mes, nil si no hay

	Invoices []*entity.Invoice // las facturas del mes, en el orden recibido
}

// FilterMonth devuelve las facturas cuya fecha cae en el mes indicado,
// preservando el orden.
func FilterMonth(invoices []*entity.Invoice, year int, month time.Month) []*entity.Invoice {
	var out []*entity.Invoice
	for _, inv := range invoices {
		if inv != nil && inMonth(inv.InvoiceDate, year, month) {
			out = append(out, inv)
		}
	}
	return out
}

// Month agrega las facturas del mes indicado. clients alimenta los nombres
// del ranking de clientes; puede ser nil.
func Month(invoices []*entity.Invoice, clients []*entity.Client, year int, month time.Month) MonthStats {
	monthInvoices := FilterMonth(invoices, year, month)
	names := clientNames(clients)

	days := make([]DayBucket, daysIn(year, month))
	for i := range days {
		days[i] = DayBucket{
			Day:        i + 1,
			Date:       time.Date(year, month, i+1, 12, 0, 0, 0, time.Local),
			Sales:      decimal.Zero,
			Commission: decimal.Zero,
		}
	}

	perClient := map[string]*ClientTotal{}
	totalSales := decimal.Zero
	totalCommission := decimal.Zero
	var record *entity.Invoice

	for _, inv := range monthInvoices {
		idx := inv.InvoiceDate.Day() - 1
		if idx >= 0 && idx < len(days) {
			days[idx].Sales = days[idx].Sales.Add(inv.TotalAmount)
			days[idx].Commission = days[idx].Commission.Add(inv.TotalCommission)
			days[idx].Count++
		}
		totalSales = totalSales.Add(inv.TotalAmount)
		totalCommission = totalCommission.Add(inv.TotalCommission)

		if inv.ClientID != "" {
			ct, ok := perClient[inv.ClientID]
			if !ok {
				ct = &ClientTotal{ClientID: inv.ClientID, Name: names[inv.ClientID], Amount: decimal.Zero}
				if ct.Name == "" {
					ct.Name = UnknownClientName
				}
				perClient[inv.ClientID] = ct
			}
			ct.Amount = ct.Amount.Add(inv.TotalAmount)
			ct.Count++
		}

		if record == nil || inv.TotalAmount.GreaterThan(record.TotalAmount) {
			record = inv
		}
	}

	best := DayBucket{}
	if len(days) > 0 {
		best = days[0]
		for _, d := range days[1:] {
			if d.Commission.GreaterThan(best.Commission) {
				best = d
			}
		}
	}

	avg := decimal.Zero
	if n := len(monthInvoices); n > 0 {
		avg = totalCommission.Div(decimal.NewFromInt(int64(n)))
	}

	return MonthStats{
		Year:            year,
		Month:           month,
		TotalSales:      totalSales,
		TotalCommission: totalCommission,
		InvoiceCount:    len(monthInvoices),
		AvgPerInvoice:   avg,
		Days:            days,
		BestDay:         best,
		TopClient:       topClient(perClient),
		Ranking:         Ranking(monthInvoices),
		RecordInvoice:   record,
		Invoices:        monthInvoices,
	}
}

// Ranking construye las fuentes de ingreso de un conjunto de facturas:
// la categoría del resto más cada producto, descendente por comisión.
// La categoría del resto va primera ante empates (orden estable).
func Ranking(invoices []*entity.Invoice) []SourceTotal {
	restSales := decimal.Zero
	restCommission := decimal.Zero
	perProduct := map[string]*SourceTotal{}
	var order []string

	for _, inv := range invoices {
		restSales = restSales.Add(inv.RestAmount)
		restCommission = restCommission.Add(inv.RestCommission)
		for _, p := range inv.Products {
			st, ok := perProduct[p.ProductName]
			if !ok {
				st = &SourceTotal{Name: p.ProductName, Sales: decimal.Zero, Commission: decimal.Zero}
				perProduct[p.ProductName] = st
				order = append(order, p.ProductName)
			}
			st.Sales = st.Sales.Add(p.Amount)
			st.Commission = st.Commission.Add(p.Commission)
		}
	}

	ranking := make([]SourceTotal, 0, len(perProduct)+1)
	ranking = append(ranking, SourceTotal{Name: RestCategoryName, IsRest: true, Sales: restSales, Commission: restCommission})
	for _, name := range order {
		ranking = append(ranking, *perProduct[name])
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Commission.GreaterThan(ranking[j].Commission)
	})
	return ranking
}

func clientNames(clients []*entity.Client) map[string]string {
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		if c != nil {
			names[c.ID] = c.Name
		}
	}
	return names
}

func topClient(perClient map[string]*ClientTotal) *ClientTotal {
	var top *ClientTotal
	for _, ct := range perClient {
		if top == nil || ct.Amount.GreaterThan(top.Amount) {
			top = ct
		}
	}
	return top
}
