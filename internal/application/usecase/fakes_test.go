package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
	"github.com/dlsventas/comisiones-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "disabled"})
}

// ── productos ──

type fakeProductRepo struct {
	items []*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if found, _ := r.GetByName(p.Name); found != nil {
		return domain.ErrDuplicate
	}
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductRepo) Upsert(p *entity.Product) error {
	for i, it := range r.items {
		if it.ID == p.ID {
			cp := *p
			r.items[i] = &cp
			return nil
		}
	}
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, it := range r.items {
		if it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, it := range r.items {
		if it.ID == p.ID {
			cp := *p
			r.items[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

// ── clientes ──

type fakeClientRepo struct {
	items []*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeClientRepo) CreateMany(clients []*entity.Client) error {
	for _, c := range clients {
		if err := r.Create(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeClientRepo) Upsert(c *entity.Client) error {
	for i, it := range r.items {
		if it.ID == c.ID {
			cp := *c
			r.items[i] = &cp
			return nil
		}
	}
	return r.Create(c)
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	for i, it := range r.items {
		if it.ID == c.ID {
			cp := *c
			r.items[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeClientRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeClientRepo) DeleteAll() error {
	r.items = nil
	return nil
}

var _ repository.ClientRepository = (*fakeClientRepo)(nil)

// ── vendedores ──

type fakeSellerRepo struct {
	items []*entity.Seller
}

func (r *fakeSellerRepo) Create(s *entity.Seller) error {
	cp := *s
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeSellerRepo) Upsert(s *entity.Seller) error {
	for i, it := range r.items {
		if it.ID == s.ID {
			cp := *s
			r.items[i] = &cp
			return nil
		}
	}
	return r.Create(s)
}

func (r *fakeSellerRepo) GetByID(id string) (*entity.Seller, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSellerRepo) List() ([]*entity.Seller, error) {
	out := make([]*entity.Seller, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakeSellerRepo) Update(s *entity.Seller) error {
	for i, it := range r.items {
		if it.ID == s.ID {
			cp := *s
			r.items[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSellerRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSellerRepo) SetDefault(id string) error {
	found := false
	for _, it := range r.items {
		if it.ID == id {
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	for _, it := range r.items {
		it.IsDefault = it.ID == id
	}
	return nil
}

var _ repository.SellerRepository = (*fakeSellerRepo)(nil)

// ── settings ──

type fakeSettingsRepo struct {
	values map[string]string
	// failUpsert fuerza un error en Upsert para simular fallos de escritura.
	failUpsert bool
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: map[string]string{}}
}

func (r *fakeSettingsRepo) Get(key string) (*entity.Setting, error) {
	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{ID: key, Key: key, Value: v}, nil
}

func (r *fakeSettingsRepo) List() ([]*entity.Setting, error) {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*entity.Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, &entity.Setting{ID: k, Key: k, Value: r.values[k]})
	}
	return out, nil
}

func (r *fakeSettingsRepo) Upsert(key, value string) error {
	if r.failUpsert {
		return errors.New("escritura de settings falló")
	}
	r.values[key] = value
	return nil
}

var _ repository.SettingsRepository = (*fakeSettingsRepo)(nil)

// ── facturas ──

type fakeInvoiceRepo struct {
	items []*entity.Invoice
	// failUpdatePercentage simula el fallo parcial del rewrite masivo.
	failUpdatePercentage map[string]bool
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{failUpdatePercentage: map[string]bool{}}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if found, _ := r.GetByNCF(inv.NCF); found != nil {
		return domain.ErrDuplicate
	}
	cp := cloneInvoice(inv)
	r.items = append(r.items, cp)
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	for i, it := range r.items {
		if it.ID == inv.ID {
			r.items[i] = cloneInvoice(inv)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, it := range r.items {
		if it.ID == id {
			return cloneInvoice(it), nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetByNCF(ncf string) (*entity.Invoice, error) {
	for _, it := range r.items {
		if it.NCF == ncf {
			return cloneInvoice(it), nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, cloneInvoice(it))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].InvoiceDate.Equal(out[j].InvoiceDate) {
			return out[i].InvoiceDate.After(out[j].InvoiceDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateProductPercentage(invoiceID, productName string, percentage, commission, totalCommission decimal.Decimal) error {
	if r.failUpdatePercentage[invoiceID] {
		return errors.New("reescritura falló")
	}
	for _, it := range r.items {
		if it.ID != invoiceID {
			continue
		}
		for i := range it.Products {
			if it.Products[i].ProductName == productName {
				it.Products[i].Percentage = percentage
				it.Products[i].Commission = commission
				it.TotalCommission = totalCommission
				return nil
			}
		}
		return domain.ErrNotFound
	}
	return domain.ErrNotFound
}

func (r *fakeInvoiceRepo) DeleteAll() error {
	r.items = nil
	return nil
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	cp := *inv
	cp.Products = make([]entity.InvoiceProduct, len(inv.Products))
	copy(cp.Products, inv.Products)
	return &cp
}

// ── tx runner ──

// fakeTxRunner pasa los mismos fakes como repos "de la transacción".
type fakeTxRunner struct {
	invoices *fakeInvoiceRepo
	clients  *fakeClientRepo
	products *fakeProductRepo
	sellers  *fakeSellerRepo
	settings *fakeSettingsRepo
}

func (r *fakeTxRunner) RunRestore(_ context.Context, fn func(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	sellers repository.SellerRepository,
	settings repository.SettingsRepository,
) error) error {
	return fn(r.invoices, r.clients, r.products, r.sellers, r.settings)
}
