package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/stats"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// factura arma una factura mínima para las agregaciones.
func factura(ncf string, day int, total, commission string, clientID string) *entity.Invoice {
	return &entity.Invoice{
		ID:              "inv-" + ncf,
		NCF:             ncf,
		InvoiceDate:     time.Date(2026, time.March, day, 12, 0, 0, 0, time.Local),
		ClientID:        clientID,
		TotalAmount:     dec(total),
		RestAmount:      dec(total),
		RestPercentage:  dec("25"),
		RestCommission:  dec(commission),
		TotalCommission: dec(commission),
	}
}

func TestMonth_CubetasDiariasYTotales(t *testing.T) {
	invoices := []*entity.Invoice{
		factura("B0100000001", 3, "1000", "250", ""),
		factura("B0100000002", 3, "500", "125", ""),
		factura("B0100000003", 20, "2000", "500", ""),
		// factura de otro mes: no debe entrar
		{ID: "x", NCF: "B0100000099", InvoiceDate: time.Date(2026, time.April, 1, 12, 0, 0, 0, time.Local),
			TotalAmount: dec("9999"), TotalCommission: dec("999")},
	}

	m := stats.Month(invoices, nil, 2026, time.March)

	require.Len(t, m.Days, 31, "marzo tiene 31 cubetas diarias")
	assert.Equal(t, 3, m.InvoiceCount)
	assert.True(t, m.TotalSales.Equal(dec("3500")))
	assert.True(t, m.TotalCommission.Equal(dec("875")))

	d3 := m.Days[2]
	assert.Equal(t, 3, d3.Day)
	assert.Equal(t, 2, d3.Count)
	assert.True(t, d3.Sales.Equal(dec("1500")))
	assert.True(t, d3.Commission.Equal(dec("375")))
}

// La suma de ventas de todas las cubetas diarias debe reconstruir la suma de
// los totales de las facturas del mes.
func TestMonth_RoundTripDeSumas(t *testing.T) {
	invoices := []*entity.Invoice{
		factura("B0100000001", 1, "100.50", "25.125", ""),
		factura("B0100000002", 15, "899.50", "224.875", ""),
		factura("B0100000003", 31, "1000", "250", ""),
	}
	m := stats.Month(invoices, nil, 2026, time.March)

	sum := decimal.Zero
	for _, d := range m.Days {
		sum = sum.Add(d.Sales)
	}
	assert.True(t, sum.Equal(m.TotalSales), "Σ cubetas = %s, total = %s", sum, m.TotalSales)
}

// El mejor día es el de mayor comisión; los empates los gana el primero.
func TestMonth_MejorDiaEmpateGanaElPrimero(t *testing.T) {
	invoices := []*entity.Invoice{
		factura("B0100000001", 5, "400", "100", ""),
		factura("B0100000002", 12, "400", "100", ""),
	}
	m := stats.Month(invoices, nil, 2026, time.March)

	assert.Equal(t, 5, m.BestDay.Day, "ante empate de comisión debe ganar el día 5")
	assert.True(t, m.BestDay.Commission.Equal(dec("100")))
}

func TestMonth_TopClientYRecord(t *testing.T) {
	clients := []*entity.Client{
		{ID: "c1", Name: "Ferretería El Sol"},
		{ID: "c2", Name: "Colmado La Fe"},
	}
	invoices := []*entity.Invoice{
		factura("B0100000001", 2, "300", "75", "c1"),
		factura("B0100000002", 9, "900", "225", "c2"),
		factura("B0100000003", 9, "200", "50", "c1"),
	}
	m := stats.Month(invoices, clients, 2026, time.March)

	require.NotNil(t, m.TopClient)
	assert.Equal(t, "Colmado La Fe", m.TopClient.Name)
	assert.True(t, m.TopClient.Amount.Equal(dec("900")))

	require.NotNil(t, m.RecordInvoice)
	assert.Equal(t, "B0100000002", m.RecordInvoice.NCF, "la venta récord es la de mayor monto")
}

// Un cliente que ya no existe en el catálogo se etiqueta como desconocido en
// vez de romper la agregación.
func TestMonth_ClienteDesconocido(t *testing.T) {
	invoices := []*entity.Invoice{factura("B0100000001", 2, "300", "75", "fantasma")}
	m := stats.Month(invoices, nil, 2026, time.March)

	require.NotNil(t, m.TopClient)
	assert.Equal(t, stats.UnknownClientName, m.TopClient.Name)
}

func TestMonth_MesVacio(t *testing.T) {
	m := stats.Month(nil, nil, 2026, time.February)

	assert.Equal(t, 0, m.InvoiceCount)
	assert.True(t, m.TotalSales.IsZero())
	assert.True(t, m.AvgPerInvoice.IsZero(), "promedio de cero facturas es cero, no NaN")
	assert.Nil(t, m.TopClient)
	assert.Nil(t, m.RecordInvoice)
	require.Len(t, m.Days, 28)
	assert.True(t, m.BestDay.Commission.IsZero())
}

func TestRanking_RestoMasProductosDescendente(t *testing.T) {
	inv := factura("B0100000001", 4, "1000", "0", "")
	inv.RestAmount = dec("700")
	inv.RestCommission = dec("175")
	inv.Products = []entity.InvoiceProduct{
		{ProductName: "Pintura Popular", Amount: dec("200"), Percentage: dec("15"), Commission: dec("30")},
		{ProductName: "Esmalte", Amount: dec("100"), Percentage: dec("10"), Commission: dec("10")},
	}
	inv.TotalCommission = dec("215")

	ranking := stats.Ranking([]*entity.Invoice{inv})

	require.Len(t, ranking, 3)
	assert.Equal(t, stats.RestCategoryName, ranking[0].Name, "el resto lidera con 175")
	assert.True(t, ranking[0].IsRest)
	assert.Equal(t, "Pintura Popular", ranking[1].Name)
	assert.Equal(t, "Esmalte", ranking[2].Name)
}
