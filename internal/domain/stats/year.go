package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/domain/entity"
)

// MonthBucket acumula un mes dentro de la vista anual.
type MonthBucket struct {
	Month time.Month
	Index int // 0 = enero

	Sales      decimal.Decimal
	Commission decimal.Decimal
	Count      int

	// Growth es el crecimiento de comisión contra el mes anterior del mismo
	// año, en porcentaje. HasGrowth es false para enero: no existe mes previo
	// dentro del año, así que no se reporta cifra alguna.
	Growth    decimal.Decimal
	HasGrowth bool

	Products []SourceTotal // ranking del mes, descendente por comisión
}

// YearStats es la vista anual completa.
type YearStats struct {
	Year            int
	TotalSales      decimal.Decimal
	TotalCommission decimal.Decimal
	InvoiceCount    int
	Months          []MonthBucket // siempre 12, enero a diciembre
}

// Year agrega las facturas del año indicado en doce cubetas mensuales.
func Year(invoices []*entity.Invoice, year int) YearStats {
	months := make([]MonthBucket, 12)
	perMonth := make([][]*entity.Invoice, 12)
	for i := range months {
		months[i] = MonthBucket{
			Month:      time.Month(i + 1),
			Index:      i,
			Sales:      decimal.Zero,
			Commission: decimal.Zero,
			Growth:     decimal.Zero,
		}
	}

	totalSales := decimal.Zero
	totalCommission := decimal.Zero
	count := 0

	for _, inv := range invoices {
		if inv == nil || inv.InvoiceDate.Year() != year {
			continue
		}
		i := int(inv.InvoiceDate.Month()) - 1
		months[i].Sales = months[i].Sales.Add(inv.TotalAmount)
		months[i].Commission = months[i].Commission.Add(inv.TotalCommission)
		months[i].Count++
		perMonth[i] = append(perMonth[i], inv)

		totalSales = totalSales.Add(inv.TotalAmount)
		totalCommission = totalCommission.Add(inv.TotalCommission)
		count++
	}

	for i := range months {
		if months[i].Count > 0 {
			months[i].Products = Ranking(perMonth[i])
		}
		if i == 0 {
			continue
		}
		months[i].HasGrowth = true
		prev := months[i-1].Commission
		if prev.IsPositive() {
			months[i].Growth = months[i].Commission.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100))
		}
	}

	return YearStats{
		Year:            year,
		TotalSales:      totalSales,
		TotalCommission: totalCommission,
		InvoiceCount:    count,
		Months:          months,
	}
}
