package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/stats"
)

func facturaEn(year int, month time.Month, total, commission string) *entity.Invoice {
	return &entity.Invoice{
		NCF:             "B0100000001",
		InvoiceDate:     time.Date(year, month, 10, 12, 0, 0, 0, time.Local),
		TotalAmount:     dec(total),
		TotalCommission: dec(commission),
	}
}

func TestYear_DoceCubetasYTotales(t *testing.T) {
	invoices := []*entity.Invoice{
		facturaEn(2026, time.January, "1000", "250"),
		facturaEn(2026, time.March, "400", "100"),
		facturaEn(2026, time.March, "600", "150"),
		facturaEn(2025, time.December, "9999", "999"), // otro año, fuera
	}

	y := stats.Year(invoices, 2026)

	require.Len(t, y.Months, 12)
	assert.Equal(t, 3, y.InvoiceCount)
	assert.True(t, y.TotalSales.Equal(dec("2000")))
	assert.True(t, y.TotalCommission.Equal(dec("500")))

	mar := y.Months[2]
	assert.Equal(t, time.March, mar.Month)
	assert.Equal(t, 2, mar.Count)
	assert.True(t, mar.Commission.Equal(dec("250")))
}

// Enero nunca reporta crecimiento: no hay mes previo dentro del año.
func TestYear_EneroSinCrecimiento(t *testing.T) {
	y := stats.Year([]*entity.Invoice{facturaEn(2026, time.January, "100", "25")}, 2026)

	assert.False(t, y.Months[0].HasGrowth, "enero no tiene mes previo")
	assert.True(t, y.Months[0].Growth.IsZero())
}

func TestYear_CrecimientoMesAMes(t *testing.T) {
	invoices := []*entity.Invoice{
		facturaEn(2026, time.January, "400", "100"),
		facturaEn(2026, time.February, "600", "150"),
	}
	y := stats.Year(invoices, 2026)

	feb := y.Months[1]
	require.True(t, feb.HasGrowth)
	assert.True(t, feb.Growth.Equal(dec("50")), "de 100 a 150 es +50%%, fue %s", feb.Growth)
}

// Mes previo en cero: el crecimiento se reporta como 0, no como infinito.
func TestYear_CrecimientoConPrevioEnCero(t *testing.T) {
	invoices := []*entity.Invoice{facturaEn(2026, time.May, "400", "100")}
	y := stats.Year(invoices, 2026)

	may := y.Months[4]
	require.True(t, may.HasGrowth)
	assert.True(t, may.Growth.IsZero(), "sin base de comparación el crecimiento es 0")
}

func TestYear_RankingPorMes(t *testing.T) {
	inv := facturaEn(2026, time.June, "1000", "230")
	inv.RestAmount = dec("800")
	inv.RestCommission = dec("200")
	inv.Products = []entity.InvoiceProduct{
		{ProductName: "Popular", Amount: dec("200"), Percentage: dec("15"), Commission: dec("30")},
	}

	y := stats.Year([]*entity.Invoice{inv}, 2026)

	jun := y.Months[5]
	require.Len(t, jun.Products, 2)
	assert.Equal(t, stats.RestCategoryName, jun.Products[0].Name)
	assert.Nil(t, y.Months[0].Products, "meses sin actividad no llevan ranking")
}
