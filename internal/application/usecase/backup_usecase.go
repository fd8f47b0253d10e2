package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
	"github.com/dlsventas/comisiones-api/internal/domain/stats"
	"github.com/dlsventas/comisiones-api/pkg/logger"
)

// RestoreTxRunner ejecuta la restauración dentro de una transacción con
// repos atados a la misma tx: o entra el backup completo o no entra nada.
type RestoreTxRunner interface {
	RunRestore(ctx context.Context, fn func(
		invoices repository.InvoiceRepository,
		clients repository.ClientRepository,
		products repository.ProductRepository,
		sellers repository.SellerRepository,
		settings repository.SettingsRepository,
	) error) error
}

// BackupUseCase exporta el snapshot completo de datos y lo restaura.
type BackupUseCase struct {
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	products repository.ProductRepository
	sellers  repository.SellerRepository
	settings repository.SettingsRepository
	txRunner RestoreTxRunner
	log      *logger.Logger
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	sellers repository.SellerRepository,
	settings repository.SettingsRepository,
	txRunner RestoreTxRunner,
	log *logger.Logger,
) *BackupUseCase {
	return &BackupUseCase{
		invoices: invoices,
		clients:  clients,
		products: products,
		sellers:  sellers,
		settings: settings,
		txRunner: txRunner,
		log:      log.Component("backup_usecase"),
	}
}

// Export arma el backup completo en el formato versionado.
func (uc *BackupUseCase) Export() (*dto.Backup, error) {
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	sellers, err := uc.sellers.List()
	if err != nil {
		return nil, err
	}
	settings, err := uc.settings.List()
	if err != nil {
		return nil, err
	}

	b := &dto.Backup{
		Version:    dto.BackupVersion,
		ExportDate: time.Now().Format(time.RFC3339),
	}
	b.Data.Invoices = make([]dto.BackupInvoice, 0, len(invoices))
	b.Data.InvoiceProducts = make([]dto.BackupInvoiceProduct, 0)
	for _, inv := range invoices {
		b.Data.Invoices = append(b.Data.Invoices, dto.BackupInvoice{
			ID:              inv.ID,
			NCF:             inv.NCF,
			InvoiceDate:     inv.InvoiceDate.Format(time.RFC3339),
			ClientID:        inv.ClientID,
			SellerID:        inv.SellerID,
			TotalAmount:     inv.TotalAmount,
			RestAmount:      inv.RestAmount,
			RestPercentage:  inv.RestPercentage,
			RestCommission:  inv.RestCommission,
			TotalCommission: inv.TotalCommission,
			CreatedAt:       inv.CreatedAt.Format(time.RFC3339),
		})
		for _, p := range inv.Products {
			b.Data.InvoiceProducts = append(b.Data.InvoiceProducts, dto.BackupInvoiceProduct{
				ID:          p.ID,
				InvoiceID:   p.InvoiceID,
				ProductName: p.ProductName,
				Amount:      p.Amount,
				Percentage:  p.Percentage,
				Commission:  p.Commission,
			})
		}
	}
	b.Data.Clients = make([]dto.BackupClient, 0, len(clients))
	for _, c := range clients {
		b.Data.Clients = append(b.Data.Clients, dto.BackupClient{
			ID:        c.ID,
			Name:      c.Name,
			Phone:     c.Phone,
			Email:     c.Email,
			Address:   c.Address,
			Notes:     c.Notes,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}
	b.Data.Products = make([]dto.BackupProduct, 0, len(products))
	for _, p := range products {
		b.Data.Products = append(b.Data.Products, dto.BackupProduct{
			ID:         p.ID,
			Name:       p.Name,
			Percentage: p.Percentage,
			Color:      p.Color,
			IsDefault:  p.IsDefault,
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		})
	}
	b.Data.Sellers = make([]dto.BackupSeller, 0, len(sellers))
	for _, s := range sellers {
		b.Data.Sellers = append(b.Data.Sellers, dto.BackupSeller{
			ID:        s.ID,
			Name:      s.Name,
			Email:     s.Email,
			Phone:     s.Phone,
			IsDefault: s.IsDefault,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		})
	}
	b.Data.Settings = make([]dto.BackupSetting, 0, len(settings))
	for _, s := range settings {
		b.Data.Settings = append(b.Data.Settings, dto.BackupSetting{ID: s.ID, Key: s.Key, Value: s.Value})
	}
	return b, nil
}

// Restore reemplaza los datos con el contenido del backup, en una sola
// transacción. Referencias colgantes a clientes o vendedores inexistentes se
// anulan en vez de romper la restauración; líneas huérfanas se descartan.
func (uc *BackupUseCase) Restore(ctx context.Context, b *dto.Backup) (*dto.RestoreResponse, error) {
	if b == nil || (len(b.Data.Invoices) == 0 && len(b.Data.Clients) == 0 &&
		len(b.Data.Products) == 0 && len(b.Data.Sellers) == 0 && len(b.Data.Settings) == 0) {
		return nil, domain.ErrInvalidBackup
	}

	resp := &dto.RestoreResponse{}
	err := uc.txRunner.RunRestore(ctx, func(
		invoices repository.InvoiceRepository,
		clients repository.ClientRepository,
		products repository.ProductRepository,
		sellers repository.SellerRepository,
		settings repository.SettingsRepository,
	) error {
		// Las facturas se reemplazan por completo; los catálogos se upsertean.
		if err := invoices.DeleteAll(); err != nil {
			return err
		}

		validSellers := map[string]bool{}
		for _, s := range b.Data.Sellers {
			if s.ID == "" || strings.TrimSpace(s.Name) == "" {
				continue
			}
			if err := sellers.Upsert(&entity.Seller{
				ID:        s.ID,
				Name:      s.Name,
				Email:     s.Email,
				Phone:     s.Phone,
				IsDefault: s.IsDefault,
				CreatedAt: stats.ParseDateSafe(s.CreatedAt),
			}); err != nil {
				return err
			}
			validSellers[s.ID] = true
			resp.Sellers++
		}

		validClients := map[string]bool{}
		for _, c := range b.Data.Clients {
			if c.ID == "" || strings.TrimSpace(c.Name) == "" {
				continue
			}
			if err := clients.Upsert(&entity.Client{
				ID:        c.ID,
				Name:      c.Name,
				Phone:     c.Phone,
				Email:     c.Email,
				Address:   c.Address,
				Notes:     c.Notes,
				CreatedAt: stats.ParseDateSafe(c.CreatedAt),
			}); err != nil {
				return err
			}
			validClients[c.ID] = true
			resp.Clients++
		}

		for _, p := range b.Data.Products {
			if p.ID == "" || strings.TrimSpace(p.Name) == "" {
				continue
			}
			color := p.Color
			if color == "" {
				color = "#6366f1"
			}
			if err := products.Upsert(&entity.Product{
				ID:         p.ID,
				Name:       p.Name,
				Percentage: p.Percentage,
				Color:      color,
				IsDefault:  p.IsDefault,
				CreatedAt:  stats.ParseDateSafe(p.CreatedAt),
			}); err != nil {
				return err
			}
			resp.Products++
		}

		for _, s := range b.Data.Settings {
			if s.Key == "" {
				continue
			}
			if err := settings.Upsert(s.Key, s.Value); err != nil {
				return err
			}
			resp.Settings++
		}

		linesByInvoice := map[string][]entity.InvoiceProduct{}
		for _, ip := range b.Data.InvoiceProducts {
			linesByInvoice[ip.InvoiceID] = append(linesByInvoice[ip.InvoiceID], entity.InvoiceProduct{
				ID:          ip.ID,
				InvoiceID:   ip.InvoiceID,
				ProductName: ip.ProductName,
				Amount:      ip.Amount,
				Percentage:  ip.Percentage,
				Commission:  ip.Commission,
			})
		}

		for _, inv := range b.Data.Invoices {
			if inv.ID == "" || inv.NCF == "" {
				continue
			}
			clientID := inv.ClientID
			if clientID != "" && !validClients[clientID] {
				clientID = ""
			}
			sellerID := inv.SellerID
			if sellerID != "" && !validSellers[sellerID] {
				sellerID = ""
			}
			dateStr := inv.InvoiceDate
			if dateStr == "" {
				dateStr = inv.CreatedAt
			}
			if err := invoices.Create(&entity.Invoice{
				ID:              inv.ID,
				NCF:             inv.NCF,
				InvoiceDate:     stats.ParseDateSafe(dateStr),
				ClientID:        clientID,
				SellerID:        sellerID,
				TotalAmount:     inv.TotalAmount,
				RestAmount:      inv.RestAmount,
				RestPercentage:  inv.RestPercentage,
				RestCommission:  inv.RestCommission,
				TotalCommission: inv.TotalCommission,
				Products:        linesByInvoice[inv.ID],
				CreatedAt:       stats.ParseDateSafe(inv.CreatedAt),
			}); err != nil {
				return err
			}
			resp.Invoices++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int("facturas", resp.Invoices).
		Int("clientes", resp.Clients).
		Int("productos", resp.Products).
		Int("vendedores", resp.Sellers).
		Msg("backup restaurado")
	return resp, nil
}
