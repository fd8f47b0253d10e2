package dto

import "github.com/shopspring/decimal"

// ChangeDTO variación porcentual contra el período anterior.
// Percent viene en valor absoluto; Positive indica la dirección.
type ChangeDTO struct {
	Percent  decimal.Decimal `json:"percent"`
	Positive bool            `json:"positive"`
}

// DayStatDTO ventas y comisiones de un día del mes.
type DayStatDTO struct {
	Day        int             `json:"day"`
	Sales      decimal.Decimal `json:"sales"`
	Commission decimal.Decimal `json:"commission"`
	Count      int             `json:"count"`
}

// RankingEntryDTO entrada del ranking de productos por comisión.
// La primera entrada siempre es la categoría sintética "Resto de Productos".
type RankingEntryDTO struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
}

// BestDayDTO el día del mes con mayor venta (empates: gana el primero).
type BestDayDTO struct {
	Day   int             `json:"day"`
	Sales decimal.Decimal `json:"sales"`
}

// TopClientDTO cliente con mayor volumen facturado del mes.
type TopClientDTO struct {
	Name  string          `json:"name"`
	Sales decimal.Decimal `json:"sales"`
	Count int             `json:"count"`
}

// RecordInvoiceDTO la factura individual más grande del mes.
type RecordInvoiceDTO struct {
	NCF    string          `json:"ncf"`
	Amount decimal.Decimal `json:"amount"`
	Day    int             `json:"day"`
}

// MonthStatsResponse respuesta de GET /api/stats/month.
type MonthStatsResponse struct {
	Year             int               `json:"year"`
	Month            int               `json:"month"`
	MonthLabel       string            `json:"month_label"`
	TotalSales       decimal.Decimal   `json:"total_sales"`
	TotalCommission  decimal.Decimal   `json:"total_commission"`
	InvoiceCount     int               `json:"invoice_count"`
	AvgPerInvoice    decimal.Decimal   `json:"avg_per_invoice"`
	SalesChange      *ChangeDTO        `json:"sales_change,omitempty"`
	CommissionChange *ChangeDTO        `json:"commission_change,omitempty"`
	CountChange      *ChangeDTO        `json:"count_change,omitempty"`
	Days             []DayStatDTO      `json:"days"`
	BestDay          *BestDayDTO       `json:"best_day,omitempty"`
	TopClient        *TopClientDTO     `json:"top_client,omitempty"`
	RecordInvoice    *RecordInvoiceDTO `json:"record_invoice,omitempty"`
	Ranking          []RankingEntryDTO `json:"ranking"`
	Narrative        string            `json:"narrative"`
}

// MonthBucketDTO resumen de un mes dentro de la vista anual.
// Growth solo viene para meses con mes anterior comparable (enero no lleva).
type MonthBucketDTO struct {
	Month      string            `json:"month"`
	Index      int               `json:"index"`
	Sales      decimal.Decimal   `json:"sales"`
	Commission decimal.Decimal   `json:"commission"`
	Count      int               `json:"count"`
	Growth     *ChangeDTO        `json:"growth,omitempty"`
	Products   []RankingEntryDTO `json:"products,omitempty"`
}

// YearStatsResponse respuesta de GET /api/stats/year.
type YearStatsResponse struct {
	Year            int              `json:"year"`
	TotalSales      decimal.Decimal  `json:"total_sales"`
	TotalCommission decimal.Decimal  `json:"total_commission"`
	InvoiceCount    int              `json:"invoice_count"`
	Months          []MonthBucketDTO `json:"months"`
}

// BreakdownProductDTO totales de un producto con sus facturas del mes.
type BreakdownProductDTO struct {
	Name            string              `json:"name"`
	Percentage      decimal.Decimal     `json:"percentage"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	TotalCommission decimal.Decimal     `json:"total_commission"`
	Entries         []BreakdownEntryDTO `json:"entries"`
}

// BreakdownEntryDTO aporte de una factura a un producto del desglose.
type BreakdownEntryDTO struct {
	NCF        string          `json:"ncf"`
	Date       string          `json:"date"`
	ClientName string          `json:"client_name"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
}

// BreakdownResponse respuesta de GET /api/stats/breakdown.
type BreakdownResponse struct {
	Year       int                   `json:"year"`
	Month      int                   `json:"month"`
	MonthLabel string                `json:"month_label"`
	Products   []BreakdownProductDTO `json:"products"`
	Rest       *BreakdownProductDTO  `json:"rest,omitempty"`
	GrandTotal decimal.Decimal       `json:"grand_total"`
}
