package usecase

import (
	"time"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/commission"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
	"github.com/dlsventas/comisiones-api/internal/domain/stats"
)

// StatsUseCase arma las vistas mensual, anual y el desglose por producto a
// partir de las facturas persistidas. La agregación en sí vive en el paquete
// de dominio stats; aquí solo se orquesta y se mapea a DTOs.
type StatsUseCase struct {
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	sellers  repository.SellerRepository
	settings *SettingsUseCase
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	sellers repository.SellerRepository,
	settings *SettingsUseCase,
) *StatsUseCase {
	return &StatsUseCase{invoices: invoices, clients: clients, sellers: sellers, settings: settings}
}

// Month arma la vista mensual, incluyendo la comparación contra el mes
// anterior (cruzando el año si el mes es enero) y el resumen narrado.
func (uc *StatsUseCase) Month(year, month int) (*dto.MonthStatsResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clients.List()
	if err != nil {
		return nil, err
	}

	m := stats.Month(invoices, clients, year, time.Month(month))

	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}
	prev := stats.Month(invoices, clients, prevYear, time.Month(prevMonth))

	resp := &dto.MonthStatsResponse{
		Year:            m.Year,
		Month:           int(m.Month),
		MonthLabel:      stats.MonthLabel(m.Year, m.Month),
		TotalSales:      m.TotalSales,
		TotalCommission: m.TotalCommission,
		InvoiceCount:    m.InvoiceCount,
		AvgPerInvoice:   m.AvgPerInvoice,
		Days:            toDayDTOs(m.Days),
		Ranking:         toRankingDTOs(m.Ranking),
		Narrative:       stats.Narrative(m, uc.defaultSellerName()),
	}
	if prev.InvoiceCount > 0 || m.InvoiceCount > 0 {
		sales := dtoChange(stats.ChangeBetween(m.TotalSales, prev.TotalSales))
		comm := dtoChange(stats.ChangeBetween(m.TotalCommission, prev.TotalCommission))
		count := dtoChange(stats.ChangeBetweenInts(m.InvoiceCount, prev.InvoiceCount))
		resp.SalesChange = &sales
		resp.CommissionChange = &comm
		resp.CountChange = &count
	}
	if m.InvoiceCount > 0 {
		resp.BestDay = &dto.BestDayDTO{Day: m.BestDay.Day, Sales: m.BestDay.Sales}
	}
	if m.TopClient != nil {
		resp.TopClient = &dto.TopClientDTO{Name: m.TopClient.Name, Sales: m.TopClient.Amount, Count: m.TopClient.Count}
	}
	if m.RecordInvoice != nil {
		resp.RecordInvoice = &dto.RecordInvoiceDTO{
			NCF:    m.RecordInvoice.NCF,
			Amount: m.RecordInvoice.TotalAmount,
			Day:    m.RecordInvoice.InvoiceDate.Day(),
		}
	}
	return resp, nil
}

// Year arma la vista anual de doce meses.
func (uc *StatsUseCase) Year(year int) (*dto.YearStatsResponse, error) {
	if year < 2000 || year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	y := stats.Year(invoices, year)

	months := make([]dto.MonthBucketDTO, 0, len(y.Months))
	for _, b := range y.Months {
		m := dto.MonthBucketDTO{
			Month:      stats.MonthName(b.Month),
			Index:      b.Index,
			Sales:      b.Sales,
			Commission: b.Commission,
			Count:      b.Count,
			Products:   toRankingDTOs(b.Products),
		}
		if b.HasGrowth {
			m.Growth = &dto.ChangeDTO{Percent: b.Growth.Abs(), Positive: !b.Growth.IsNegative()}
		}
		months = append(months, m)
	}
	return &dto.YearStatsResponse{
		Year:            y.Year,
		TotalSales:      y.TotalSales,
		TotalCommission: y.TotalCommission,
		InvoiceCount:    y.InvoiceCount,
		Months:          months,
	}, nil
}

// Breakdown arma el desglose mensual por producto, con la cubeta del resto.
func (uc *StatsUseCase) Breakdown(year, month int) (*dto.BreakdownResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	restPct, err := uc.settings.RestPercentage()
	if err != nil {
		return nil, err
	}

	b := stats.MonthlyBreakdown(invoices, clients, year, time.Month(month), restPct)

	resp := &dto.BreakdownResponse{
		Year:       b.Year,
		Month:      int(b.Month),
		MonthLabel: stats.MonthLabel(b.Year, b.Month),
		Products:   make([]dto.BreakdownProductDTO, 0, len(b.Products)),
		GrandTotal: b.GrandTotal,
	}
	for _, p := range b.Products {
		resp.Products = append(resp.Products, toBreakdownProductDTO(p))
	}
	if len(b.Rest.Entries) > 0 {
		rest := toBreakdownProductDTO(b.Rest)
		resp.Rest = &rest
	}
	return resp, nil
}

// MonthDomain expone la vista mensual de dominio sin mapear, para los PDF.
func (uc *StatsUseCase) MonthDomain(year, month int) (*stats.MonthStats, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	m := stats.Month(invoices, clients, year, time.Month(month))
	return &m, nil
}

// YearDomain expone la vista anual de dominio sin mapear, para los PDF.
func (uc *StatsUseCase) YearDomain(year int) (*stats.YearStats, error) {
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	y := stats.Year(invoices, year)
	return &y, nil
}

// BreakdownDomain expone el desglose de dominio sin mapear, para los PDF.
func (uc *StatsUseCase) BreakdownDomain(year, month int) (*stats.Breakdown, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	restPct, err := uc.settings.RestPercentage()
	if err != nil {
		return nil, err
	}
	b := stats.MonthlyBreakdown(invoices, clients, year, time.Month(month), restPct)
	return &b, nil
}

// DefaultSellerName devuelve el nombre del vendedor default, o vacío.
func (uc *StatsUseCase) DefaultSellerName() string {
	return uc.defaultSellerName()
}

func (uc *StatsUseCase) defaultSellerName() string {
	sellers, err := uc.sellers.List()
	if err != nil {
		return ""
	}
	for _, s := range sellers {
		if s.IsDefault {
			return s.Name
		}
	}
	return ""
}

func dtoChange(c stats.Change) dto.ChangeDTO {
	return dto.ChangeDTO{Percent: c.Percent, Positive: c.Positive}
}

func toDayDTOs(days []stats.DayBucket) []dto.DayStatDTO {
	out := make([]dto.DayStatDTO, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DayStatDTO{Day: d.Day, Sales: d.Sales, Commission: d.Commission, Count: d.Count})
	}
	return out
}

func toRankingDTOs(ranking []stats.SourceTotal) []dto.RankingEntryDTO {
	if ranking == nil {
		return nil
	}
	out := make([]dto.RankingEntryDTO, 0, len(ranking))
	for _, r := range ranking {
		out = append(out, dto.RankingEntryDTO{Name: r.Name, Amount: r.Sales, Commission: r.Commission})
	}
	return out
}

func toBreakdownProductDTO(p stats.ProductBreakdown) dto.BreakdownProductDTO {
	out := dto.BreakdownProductDTO{
		Name:            p.Name,
		Percentage:      p.Percentage,
		TotalAmount:     p.TotalAmount,
		TotalCommission: p.TotalCommission,
		Entries:         make([]dto.BreakdownEntryDTO, 0, len(p.Entries)),
	}
	for _, e := range p.Entries {
		name := e.ClientName
		if name == "" {
			name = stats.UnknownClientName
		}
		out.Entries = append(out.Entries, dto.BreakdownEntryDTO{
			NCF:        e.NCF,
			Date:       e.Date.Format("2006-01-02"),
			ClientName: name,
			Amount:     e.Amount,
			Commission: commission.LineCommission(e.Amount, p.Percentage),
		})
	}
	return out
}
