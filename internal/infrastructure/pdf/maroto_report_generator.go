// Package pdf implementa los reportes imprimibles del calculador de
// comisiones usando Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Período + Vendedor          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ventas / Comisión / Facturas / Promedio           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA principal (facturas, meses o productos)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain/stats"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDark    = &props.Color{Red: 30, Green: 41, Blue: 59}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificación de interfaz en compilación.
var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// MonthlyReport genera el reporte mensual: resumen, facturas y ranking.
func (g *MarotoReportGenerator) MonthlyReport(data usecase.MonthlyReportData) ([]byte, error) {
	m := newDocument("Reporte Mensual de Comisiones")

	m.AddRows(headerRow("REPORTE MENSUAL DE COMISIONES", data.Label, data.SellerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data.Stats.TotalSales, data.Stats.TotalCommission, data.Stats.InvoiceCount, data.Stats.AvgPerInvoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de facturas del mes
	m.AddRows(sectionRow("FACTURAS DEL MES"))
	m.AddRows(invoiceTableHeader())
	for _, inv := range data.Stats.Invoices {
		client := data.ClientNames[inv.ClientID]
		if client == "" {
			client = stats.UnknownClientName
		}
		m.AddRows(row.New(6).Add(
			cell(inv.NCF, 2, align.Left),
			cell(inv.InvoiceDate.Format("02/01/2006"), 2, align.Center),
			cell(client, 4, align.Left),
			cell("$"+stats.FormatMoney(inv.TotalAmount), 2, align.Right),
			cell("$"+stats.FormatMoney(inv.TotalCommission), 2, align.Right),
		))
	}

	// Ranking de fuentes de ingreso
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionRow("RANKING POR FUENTE DE INGRESO"))
	for _, r := range data.Stats.Ranking {
		m.AddRows(row.New(6).Add(
			cell(r.Name, 6, align.Left),
			cell("$"+stats.FormatMoney(r.Sales), 3, align.Right),
			cell("$"+stats.FormatMoney(r.Commission), 3, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(grandTotalRow("COMISIÓN TOTAL DEL MES:", data.Stats.TotalCommission))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte mensual: %w", err)
	}
	return doc.GetBytes(), nil
}

// AnnualReport genera el reporte anual o de rango: una fila por mes.
func (g *MarotoReportGenerator) AnnualReport(data usecase.AnnualReportData) ([]byte, error) {
	m := newDocument("Reporte Anual de Comisiones")

	m.AddRows(headerRow("REPORTE ANUAL DE COMISIONES", data.Label, data.SellerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	avg := decimal.Zero
	if data.InvoiceCount > 0 {
		avg = data.TotalCommission.Div(decimal.NewFromInt(int64(data.InvoiceCount)))
	}
	m.AddRows(summaryRow(data.TotalSales, data.TotalCommission, data.InvoiceCount, avg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("DETALLE POR MES"))
	m.AddRows(row.New(7).Add(
		headerCell("Mes", 3, align.Left),
		headerCell("Facturas", 2, align.Center),
		headerCell("Ventas", 3, align.Right),
		headerCell("Comisión", 2, align.Right),
		headerCell("Variación", 2, align.Right),
	))
	for _, b := range data.Buckets {
		growth := "—"
		if b.HasGrowth {
			sign := "+"
			if b.Growth.IsNegative() {
				sign = "-"
			}
			growth = fmt.Sprintf("%s%s%%", sign, b.Growth.Abs().Round(1))
		}
		m.AddRows(row.New(6).Add(
			cell(stats.MonthName(b.Month), 3, align.Left),
			cell(fmt.Sprintf("%d", b.Count), 2, align.Center),
			cell("$"+stats.FormatMoney(b.Sales), 3, align.Right),
			cell("$"+stats.FormatMoney(b.Commission), 2, align.Right),
			cell(growth, 2, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(grandTotalRow("COMISIÓN TOTAL DEL PERÍODO:", data.TotalCommission))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte anual: %w", err)
	}
	return doc.GetBytes(), nil
}

// BreakdownReport genera el desglose por producto con sus facturas.
func (g *MarotoReportGenerator) BreakdownReport(data usecase.BreakdownReportData) ([]byte, error) {
	m := newDocument("Desglose Mensual por Producto")

	m.AddRows(headerRow("DESGLOSE POR PRODUCTO", data.Label, data.SellerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, p := range data.Breakdown.Products {
		addBreakdownSection(m, p)
	}
	if len(data.Breakdown.Rest.Entries) > 0 {
		addBreakdownSection(m, data.Breakdown.Rest)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(grandTotalRow("COMISIÓN TOTAL DEL MES:", data.Breakdown.GrandTotal))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar desglose: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período + vendedor (der).
func headerRow(title, label, seller string) core.Row {
	right := []core.Component{
		text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Color: colorDark,
		}),
	}
	if seller != "" {
		right = append(right, text.New("Vendedor: "+seller, props.Text{
			Size: 8, Align: align.Right, Top: 9, Color: colorGray,
		}))
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Calculadora de Comisiones DLS", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(right...),
	)
}

// summaryRow: los cuatro KPIs del período.
func summaryRow(sales, commission decimal.Decimal, count int, avg decimal.Decimal) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Align: align.Center, Color: colorDark}),
		)
	}
	return row.New(14).Add(
		kpi("VENTAS", "$"+stats.FormatMoney(sales)),
		kpi("COMISIÓN", "$"+stats.FormatMoney(commission)),
		kpi("FACTURAS", fmt.Sprintf("%d", count)),
		kpi("PROMEDIO/FACTURA", "$"+stats.FormatMoney(avg)),
	)
}

func sectionRow(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func invoiceTableHeader() core.Row {
	return row.New(7).Add(
		headerCell("NCF", 2, align.Left),
		headerCell("Fecha", 2, align.Center),
		headerCell("Cliente", 4, align.Left),
		headerCell("Monto", 2, align.Right),
		headerCell("Comisión", 2, align.Right),
	)
}

func addBreakdownSection(m core.Maroto, p stats.ProductBreakdown) {
	m.AddRows(line.NewRow(2))
	m.AddRows(row.New(8).Add(
		col.New(8).Add(text.New(
			fmt.Sprintf("%s (%s%%)", p.Name, p.Percentage.Round(2)),
			props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2},
		)),
		col.New(4).Add(text.New(
			fmt.Sprintf("$%s / Comisión $%s", stats.FormatMoney(p.TotalAmount), stats.FormatMoney(p.TotalCommission)),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorDark},
		)),
	))
	m.AddRows(row.New(6).Add(
		headerCell("NCF", 3, align.Left),
		headerCell("Fecha", 3, align.Center),
		headerCell("Cliente", 4, align.Left),
		headerCell("Monto", 2, align.Right),
	))
	for _, e := range p.Entries {
		client := e.ClientName
		if client == "" {
			client = stats.UnknownClientName
		}
		m.AddRows(row.New(6).Add(
			cell(e.NCF, 3, align.Left),
			cell(e.Date.Format("02/01/2006"), 3, align.Center),
			cell(client, 4, align.Left),
			cell("$"+stats.FormatMoney(e.Amount), 2, align.Right),
		))
	}
}

func grandTotalRow(label string, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(4).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New("$"+stats.FormatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorDark, Top: 1, Left: 1, Right: 1,
	}))
}
