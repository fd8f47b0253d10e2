package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/commission"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
	"github.com/dlsventas/comisiones-api/internal/domain/stats"
	"github.com/dlsventas/comisiones-api/pkg/logger"
)

// InvoiceUseCase casos de uso de facturas: guardar con recálculo completo
// del desglose, numeración NCF y la reescritura masiva de porcentajes.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	sellers  repository.SellerRepository
	products repository.ProductRepository
	settings *SettingsUseCase
	log      *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	sellers repository.SellerRepository,
	products repository.ProductRepository,
	settings *SettingsUseCase,
	log *logger.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices: invoices,
		clients:  clients,
		sellers:  sellers,
		products: products,
		settings: settings,
		log:      log.Component("invoice_usecase"),
	}
}

// Create guarda una factura nueva. El desglose de comisiones se recalcula
// completo en el servidor y el contador NCF avanza si el sufijo usado supera
// al último registrado. Un NCF repetido devuelve ErrDuplicate.
func (uc *InvoiceUseCase) Create(in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, suffix, err := uc.buildInvoice(in)
	if err != nil {
		return nil, err
	}
	if existing, err := uc.invoices.GetByNCF(inv.NCF); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	inv.ID = uuid.New().String()
	inv.CreatedAt = time.Now()
	for i := range inv.Products {
		inv.Products[i].ID = uuid.New().String()
		inv.Products[i].InvoiceID = inv.ID
	}
	if err := uc.invoices.Create(inv); err != nil {
		return nil, err
	}
	if err := uc.settings.AdvanceNCF(suffix); err != nil {
		uc.log.Warn().Err(err).Str("ncf", inv.NCF).Msg("no se pudo avanzar el contador NCF")
	}
	uc.log.Info().Str("ncf", inv.NCF).Str("total", inv.TotalAmount.String()).Msg("factura creada")
	return uc.toInvoiceResponse(inv), nil
}

// Update reemplaza una factura existente, recalculando el desglose entero.
func (uc *InvoiceUseCase) Update(id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	current, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	inv, suffix, err := uc.buildInvoice(in)
	if err != nil {
		return nil, err
	}
	if other, err := uc.invoices.GetByNCF(inv.NCF); err != nil {
		return nil, err
	} else if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	inv.ID = current.ID
	inv.CreatedAt = current.CreatedAt
	for i := range inv.Products {
		inv.Products[i].ID = uuid.New().String()
		inv.Products[i].InvoiceID = inv.ID
	}
	if err := uc.invoices.Update(inv); err != nil {
		return nil, err
	}
	if err := uc.settings.AdvanceNCF(suffix); err != nil {
		uc.log.Warn().Err(err).Str("ncf", inv.NCF).Msg("no se pudo avanzar el contador NCF")
	}
	return uc.toInvoiceResponse(inv), nil
}

// GetByID obtiene una factura con su desglose; nil si no existe.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return uc.toInvoiceResponse(inv), nil
}

// List lista facturas (más reciente primero) con paginación en memoria.
func (uc *InvoiceUseCase) List(page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	all, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	total := len(all)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	out := make([]dto.InvoiceResponse, 0, end-start)
	for _, inv := range all[start:end] {
		out = append(out, *uc.toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Invoices: out,
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina la factura y sus líneas.
func (uc *InvoiceUseCase) Delete(id string) error {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoices.Delete(id)
}

// BulkPercentage reescribe el porcentaje de un producto en todas las facturas
// de un mes, recalculando comisión de línea y total por factura. Es un
// best-effort factura por factura: un fallo no detiene a las demás.
func (uc *InvoiceUseCase) BulkPercentage(in dto.BulkPercentageRequest) (*dto.BulkPercentageResponse, error) {
	if in.NewPercentage.IsNegative() || in.NewPercentage.GreaterThan(percentMax) {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	all, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	monthInvoices := stats.FilterMonth(all, in.Year, time.Month(in.Month))

	resp := &dto.BulkPercentageResponse{}
	for _, inv := range monthInvoices {
		var target *entity.InvoiceProduct
		for i := range inv.Products {
			if inv.Products[i].ProductName == name {
				target = &inv.Products[i]
				break
			}
		}
		if target == nil {
			continue
		}
		newCommission := commission.LineCommission(target.Amount, in.NewPercentage)
		newTotal := inv.RestCommission.Add(newCommission)
		for i := range inv.Products {
			if inv.Products[i].ProductName != name {
				newTotal = newTotal.Add(inv.Products[i].Commission)
			}
		}
		if err := uc.invoices.UpdateProductPercentage(inv.ID, name, in.NewPercentage, newCommission, newTotal); err != nil {
			uc.log.Error().Err(err).Str("invoice_id", inv.ID).Str("producto", name).Msg("fallo reescritura de porcentaje")
			resp.Failed++
			continue
		}
		resp.Updated++
	}
	uc.log.Info().Str("producto", name).Int("actualizadas", resp.Updated).Int("fallidas", resp.Failed).Msg("reescritura masiva terminada")
	return resp, nil
}

// buildInvoice valida el request y arma la entidad con el desglose
// recalculado. Devuelve también el sufijo NCF para avanzar el contador.
func (uc *InvoiceUseCase) buildInvoice(in dto.SaveInvoiceRequest) (*entity.Invoice, int, error) {
	rawSuffix := strings.TrimSpace(in.NCFSuffix)
	if !commission.ValidNCFSuffixInput(rawSuffix) {
		return nil, 0, domain.ErrInvalidNCF
	}
	suffix := atoiSuffix(rawSuffix)
	if !in.TotalAmount.IsPositive() {
		return nil, 0, domain.ErrInvalidInput
	}

	lines := make([]commission.Line, 0, len(in.Products))
	for _, p := range in.Products {
		name := strings.TrimSpace(p.ProductName)
		if name == "" || p.Amount.IsNegative() {
			return nil, 0, domain.ErrInvalidInput
		}
		if !p.Amount.IsPositive() {
			continue // líneas en cero no aportan nada al desglose
		}
		pct := p.Percentage
		if pct.IsZero() {
			if cat, _ := uc.products.GetByName(name); cat != nil {
				pct = cat.Percentage
			}
		}
		if pct.IsNegative() || pct.GreaterThan(percentMax) {
			return nil, 0, domain.ErrInvalidInput
		}
		lines = append(lines, commission.Line{Name: name, Amount: p.Amount, Percentage: pct})
	}

	if in.ClientID != "" {
		c, err := uc.clients.GetByID(in.ClientID)
		if err != nil {
			return nil, 0, err
		}
		if c == nil {
			return nil, 0, domain.ErrInvalidInput
		}
	}
	if in.SellerID != "" {
		s, err := uc.sellers.GetByID(in.SellerID)
		if err != nil {
			return nil, 0, err
		}
		if s == nil {
			return nil, 0, domain.ErrInvalidInput
		}
	}

	restPct, err := uc.settings.RestPercentage()
	if err != nil {
		return nil, 0, err
	}
	breakdown := commission.Calculate(in.TotalAmount, lines, restPct)

	products := make([]entity.InvoiceProduct, 0, len(breakdown.Lines))
	for _, l := range breakdown.Lines {
		products = append(products, entity.InvoiceProduct{
			ProductName: l.Name,
			Amount:      l.Amount,
			Percentage:  l.Percentage,
			Commission:  l.Commission,
		})
	}

	return &entity.Invoice{
		NCF:             commission.FormatNCF(suffix),
		InvoiceDate:     stats.ParseDateSafe(in.InvoiceDate),
		ClientID:        in.ClientID,
		SellerID:        in.SellerID,
		TotalAmount:     in.TotalAmount,
		RestAmount:      breakdown.RestAmount,
		RestPercentage:  breakdown.RestPercentage,
		RestCommission:  breakdown.RestCommission,
		TotalCommission: breakdown.TotalCommission,
		Products:        products,
	}, suffix, nil
}

// atoiSuffix convierte el sufijo ya validado (solo dígitos) a entero.
func atoiSuffix(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func (uc *InvoiceUseCase) toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:              inv.ID,
		NCF:             inv.NCF,
		InvoiceDate:     inv.InvoiceDate,
		ClientID:        inv.ClientID,
		SellerID:        inv.SellerID,
		TotalAmount:     inv.TotalAmount,
		RestAmount:      inv.RestAmount,
		RestPercentage:  inv.RestPercentage,
		RestCommission:  inv.RestCommission,
		TotalCommission: inv.TotalCommission,
		Products:        make([]dto.InvoiceProductResponse, 0, len(inv.Products)),
		CreatedAt:       inv.CreatedAt,
	}
	for _, p := range inv.Products {
		resp.Products = append(resp.Products, dto.InvoiceProductResponse{
			ID:          p.ID,
			ProductName: p.ProductName,
			Amount:      p.Amount,
			Percentage:  p.Percentage,
			Commission:  p.Commission,
		})
	}
	if inv.ClientID != "" {
		if c, _ := uc.clients.GetByID(inv.ClientID); c != nil {
			resp.ClientName = c.Name
		}
	}
	if inv.SellerID != "" {
		if s, _ := uc.sellers.GetByID(inv.SellerID); s != nil {
			resp.SellerName = s.Name
		}
	}
	return resp
}
