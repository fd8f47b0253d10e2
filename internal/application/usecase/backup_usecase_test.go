package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
)

type backupFixture struct {
	uc       *usecase.BackupUseCase
	invoices *fakeInvoiceRepo
	clients  *fakeClientRepo
	products *fakeProductRepo
	sellers  *fakeSellerRepo
	settings *fakeSettingsRepo
}

func newBackupFixture() *backupFixture {
	invoices := newFakeInvoiceRepo()
	clients := &fakeClientRepo{}
	products := &fakeProductRepo{}
	sellers := &fakeSellerRepo{}
	settings := newFakeSettingsRepo()
	tx := &fakeTxRunner{
		invoices: invoices,
		clients:  clients,
		products: products,
		sellers:  sellers,
		settings: settings,
	}
	return &backupFixture{
		uc:       usecase.NewBackupUseCase(invoices, clients, products, sellers, settings, tx, testLogger()),
		invoices: invoices,
		clients:  clients,
		products: products,
		sellers:  sellers,
		settings: settings,
	}
}

func TestBackupExport_FormatoVersionado(t *testing.T) {
	f := newBackupFixture()
	require.NoError(t, f.clients.Create(&entity.Client{ID: "c1", Name: "Juan"}))
	require.NoError(t, f.invoices.Create(&entity.Invoice{
		ID: "i1", NCF: "B0100000001", ClientID: "c1",
		TotalAmount: dec("100"), TotalCommission: dec("25"),
		Products: []entity.InvoiceProduct{
			{ID: "l1", InvoiceID: "i1", ProductName: "Premium", Amount: dec("40"), Percentage: dec("10"), Commission: dec("4")},
		},
	}))

	b, err := f.uc.Export()
	require.NoError(t, err)

	assert.Equal(t, "1.2", b.Version)
	assert.NotEmpty(t, b.ExportDate)
	require.Len(t, b.Data.Invoices, 1)
	require.Len(t, b.Data.InvoiceProducts, 1, "las líneas van aplanadas en su propio arreglo")
	assert.Equal(t, "i1", b.Data.InvoiceProducts[0].InvoiceID)
	require.Len(t, b.Data.Clients, 1)
}

func TestBackupRestore_Vacio(t *testing.T) {
	f := newBackupFixture()

	_, err := f.uc.Restore(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidBackup)

	_, err = f.uc.Restore(context.Background(), &dto.Backup{Version: "1.2"})
	assert.ErrorIs(t, err, domain.ErrInvalidBackup)
}

// La restauración reemplaza las facturas, reconecta las líneas por invoice_id
// y anula referencias a clientes o vendedores que no vienen en el backup.
func TestBackupRestore_ReferenciasColgantes(t *testing.T) {
	f := newBackupFixture()

	// Factura previa que debe desaparecer con el reemplazo.
	require.NoError(t, f.invoices.Create(&entity.Invoice{ID: "vieja", NCF: "B0100009999"}))

	b := &dto.Backup{Version: "1.2"}
	b.Data.Sellers = []dto.BackupSeller{
		{ID: "s1", Name: "Pedro"},
		{ID: "s2", Name: "  "}, // sin nombre: se descarta
	}
	b.Data.Clients = []dto.BackupClient{
		{ID: "c1", Name: "Juan"},
	}
	b.Data.Invoices = []dto.BackupInvoice{
		{ID: "i1", NCF: "B0100000001", InvoiceDate: "2025-08-15T00:00:00Z", ClientID: "c1", SellerID: "s1",
			TotalAmount: dec("100"), TotalCommission: dec("25")},
		{ID: "i2", NCF: "B0100000002", InvoiceDate: "2025-08-16T00:00:00Z", ClientID: "c-fantasma", SellerID: "s2",
			TotalAmount: dec("200"), TotalCommission: dec("50")},
	}
	b.Data.InvoiceProducts = []dto.BackupInvoiceProduct{
		{ID: "l1", InvoiceID: "i1", ProductName: "Premium", Amount: dec("40"), Percentage: dec("10"), Commission: dec("4")},
		{ID: "l2", InvoiceID: "no-existe", ProductName: "Huérfana", Amount: dec("10"), Percentage: dec("5"), Commission: dec("0.5")},
	}

	out, err := f.uc.Restore(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Invoices)
	assert.Equal(t, 1, out.Clients)
	assert.Equal(t, 1, out.Sellers, "el vendedor sin nombre no entra")

	old, err := f.invoices.GetByID("vieja")
	require.NoError(t, err)
	assert.Nil(t, old, "las facturas previas se reemplazan")

	i1, err := f.invoices.GetByID("i1")
	require.NoError(t, err)
	require.NotNil(t, i1)
	assert.Equal(t, "c1", i1.ClientID)
	require.Len(t, i1.Products, 1)
	assert.Equal(t, "Premium", i1.Products[0].ProductName)

	i2, err := f.invoices.GetByID("i2")
	require.NoError(t, err)
	require.NotNil(t, i2)
	assert.Empty(t, i2.ClientID, "cliente inexistente se anula")
	assert.Empty(t, i2.SellerID, "vendedor descartado se anula")
	assert.Empty(t, i2.Products, "las líneas huérfanas se descartan")
}

// Una factura sin fecha usa su created_at como fecha de factura.
func TestBackupRestore_FechaCaeACreatedAt(t *testing.T) {
	f := newBackupFixture()

	b := &dto.Backup{Version: "1.2"}
	b.Data.Invoices = []dto.BackupInvoice{
		{ID: "i1", NCF: "B0100000001", CreatedAt: "2024-03-10T09:00:00Z",
			TotalAmount: dec("100"), TotalCommission: dec("25")},
	}

	_, err := f.uc.Restore(context.Background(), b)
	require.NoError(t, err)

	inv, err := f.invoices.GetByID("i1")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, 2024, inv.InvoiceDate.Year())
	assert.Equal(t, 3, int(inv.InvoiceDate.Month()))
}

// Los productos restaurados sin color reciben el color de respaldo.
func TestBackupRestore_ColorPorDefecto(t *testing.T) {
	f := newBackupFixture()

	b := &dto.Backup{Version: "1.2"}
	b.Data.Products = []dto.BackupProduct{
		{ID: "p1", Name: "Premium", Percentage: dec("5")},
		{ID: "p2", Name: "Gold", Percentage: dec("4"), Color: "#f59e0b"},
	}

	out, err := f.uc.Restore(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Products)

	p1, err := f.products.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, p1)
	assert.Equal(t, "#6366f1", p1.Color)

	p2, err := f.products.GetByID("p2")
	require.NoError(t, err)
	require.NotNil(t, p2)
	assert.Equal(t, "#f59e0b", p2.Color)
}

// Los settings del backup se upsertean y quedan visibles para el calculador.
func TestBackupRestore_Settings(t *testing.T) {
	f := newBackupFixture()

	b := &dto.Backup{Version: "1.2"}
	b.Data.Settings = []dto.BackupSetting{
		{ID: "x", Key: entity.SettingRestPercentage, Value: "30"},
		{ID: "y", Key: entity.SettingLastNCFNumber, Value: "77"},
		{ID: "z", Key: "", Value: "descartada"},
	}

	out, err := f.uc.Restore(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Settings)

	s, err := f.settings.Get(entity.SettingRestPercentage)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "30", s.Value)
}
