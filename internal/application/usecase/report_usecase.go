package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
	"github.com/dlsventas/comisiones-api/internal/domain/stats"
)

// MonthlyReportData insumo del PDF mensual.
type MonthlyReportData struct {
	Stats       stats.MonthStats
	Label       string
	SellerName  string
	ClientNames map[string]string
}

// AnnualReportData insumo del PDF anual o de rango de meses.
type AnnualReportData struct {
	Year            int
	Label           string
	SellerName      string
	Buckets         []stats.MonthBucket // solo los meses del rango pedido
	TotalSales      decimal.Decimal
	TotalCommission decimal.Decimal
	InvoiceCount    int
}

// BreakdownReportData insumo del PDF de desglose por producto.
type BreakdownReportData struct {
	Breakdown  stats.Breakdown
	Label      string
	SellerName string
}

// ReportPDFGenerator puerto de generación de PDFs de reportes.
type ReportPDFGenerator interface {
	MonthlyReport(data MonthlyReportData) ([]byte, error)
	AnnualReport(data AnnualReportData) ([]byte, error)
	BreakdownReport(data BreakdownReportData) ([]byte, error)
}

// ReportUseCase arma los datos de los reportes y delega el PDF al generador.
type ReportUseCase struct {
	clients   repository.ClientRepository
	statsUC   *StatsUseCase
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	clients repository.ClientRepository,
	statsUC *StatsUseCase,
	generator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{clients: clients, statsUC: statsUC, generator: generator}
}

// Monthly genera el PDF del mes: resumen, facturas y ranking.
func (uc *ReportUseCase) Monthly(year, month int) ([]byte, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.statsUC.MonthDomain(year, month)
	if err != nil {
		return nil, err
	}
	names, err := uc.clientNameMap()
	if err != nil {
		return nil, err
	}
	return uc.generator.MonthlyReport(MonthlyReportData{
		Stats:       *m,
		Label:       stats.MonthLabel(year, time.Month(month)),
		SellerName:  uc.statsUC.DefaultSellerName(),
		ClientNames: names,
	})
}

// Annual genera el PDF anual. from y to (1-12) acotan el rango de meses;
// con from > to la petición es inválida. (0, 0) cubre el año completo.
func (uc *ReportUseCase) Annual(year, from, to int) ([]byte, error) {
	if from == 0 {
		from = 1
	}
	if to == 0 {
		to = 12
	}
	if from < 1 || to > 12 || from > to {
		return nil, domain.ErrInvalidInput
	}
	y, err := uc.statsUC.YearDomain(year)
	if err != nil {
		return nil, err
	}

	buckets := y.Months[from-1 : to]
	totalSales := decimal.Zero
	totalCommission := decimal.Zero
	count := 0
	for _, b := range buckets {
		totalSales = totalSales.Add(b.Sales)
		totalCommission = totalCommission.Add(b.Commission)
		count += b.Count
	}

	label := fmt.Sprintf("%s %d", stats.MonthName(time.Month(from)), year)
	if from != to {
		label = fmt.Sprintf("%s - %s %d", stats.MonthName(time.Month(from)), stats.MonthName(time.Month(to)), year)
	}

	return uc.generator.AnnualReport(AnnualReportData{
		Year:            year,
		Label:           label,
		SellerName:      uc.statsUC.DefaultSellerName(),
		Buckets:         buckets,
		TotalSales:      totalSales,
		TotalCommission: totalCommission,
		InvoiceCount:    count,
	})
}

// Breakdown genera el PDF de desglose mensual por producto.
func (uc *ReportUseCase) Breakdown(year, month int) ([]byte, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.statsUC.BreakdownDomain(year, month)
	if err != nil {
		return nil, err
	}
	return uc.generator.BreakdownReport(BreakdownReportData{
		Breakdown:  *b,
		Label:      stats.MonthLabel(year, time.Month(month)),
		SellerName: uc.statsUC.DefaultSellerName(),
	})
}

func (uc *ReportUseCase) clientNameMap() (map[string]string, error) {
	clients, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names, nil
}
