package commission_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsventas/comisiones-api/internal/domain/commission"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Escenario de referencia: total 1000, un producto al 15% con monto 200 y
// resto al 25% → resto 800, comisión resto 200, comisión producto 30,
// comisión total 230.
func TestCalculate_EscenarioBase(t *testing.T) {
	b := commission.Calculate(
		dec("1000"),
		[]commission.Line{{Name: "Pintura Popular", Amount: dec("200"), Percentage: dec("15")}},
		dec("25"),
	)

	require.Len(t, b.Lines, 1)
	assert.True(t, b.RestAmount.Equal(dec("800")), "resto debe ser 800, fue %s", b.RestAmount)
	assert.True(t, b.RestCommission.Equal(dec("200")), "comisión del resto debe ser 200")
	assert.True(t, b.Lines[0].Commission.Equal(dec("30")), "comisión del producto debe ser 30")
	assert.True(t, b.TotalCommission.Equal(dec("230")), "comisión total debe ser 230")
}

// Si los montos especiales exceden el total, el resto se clava en cero y el
// exceso se absorbe sin error.
func TestCalculate_MontosExcedenTotal(t *testing.T) {
	b := commission.Calculate(
		dec("500"),
		[]commission.Line{{Name: "Esmalte", Amount: dec("600"), Percentage: dec("10")}},
		dec("25"),
	)

	assert.True(t, b.RestAmount.IsZero(), "resto debe quedar en cero")
	assert.True(t, b.RestCommission.IsZero(), "comisión del resto debe quedar en cero")
	assert.True(t, b.TotalCommission.Equal(dec("60")), "comisión total = 600*10%% = 60")
}

// Sin productos especiales todo el total va al resto.
func TestCalculate_SinProductosEspeciales(t *testing.T) {
	b := commission.Calculate(dec("1250"), nil, dec("25"))

	assert.Empty(t, b.Lines)
	assert.True(t, b.RestAmount.Equal(dec("1250")))
	assert.True(t, b.RestCommission.Equal(dec("312.5")))
	assert.True(t, b.TotalCommission.Equal(dec("312.5")))
}

// La suma de montos de líneas más el resto siempre reconstruye el total
// cuando los montos no exceden el total de la factura.
func TestCalculate_InvarianteDeSuma(t *testing.T) {
	lines := []commission.Line{
		{Name: "A", Amount: dec("100"), Percentage: dec("15")},
		{Name: "B", Amount: dec("250.75"), Percentage: dec("12.5")},
		{Name: "C", Amount: dec("49.25"), Percentage: dec("8")},
	}
	total := dec("1000")
	b := commission.Calculate(total, lines, dec("25"))

	sum := b.RestAmount
	commSum := b.RestCommission
	for _, l := range b.Lines {
		sum = sum.Add(l.Amount)
		commSum = commSum.Add(l.Commission)
	}
	assert.True(t, sum.Equal(total), "Σ montos + resto debe reconstruir el total")
	assert.True(t, commSum.Equal(b.TotalCommission), "Σ comisiones + resto debe ser la comisión total")
}

// Calculate es una función pura: dos llamadas con la misma entrada producen
// exactamente el mismo desglose.
func TestCalculate_Idempotente(t *testing.T) {
	lines := []commission.Line{{Name: "Popular", Amount: dec("333.33"), Percentage: dec("15")}}
	a := commission.Calculate(dec("900"), lines, dec("25"))
	b := commission.Calculate(dec("900"), lines, dec("25"))

	require.Len(t, b.Lines, len(a.Lines))
	assert.True(t, a.TotalCommission.Equal(b.TotalCommission))
	assert.True(t, a.RestAmount.Equal(b.RestAmount))
	assert.True(t, a.Lines[0].Commission.Equal(b.Lines[0].Commission))
}

// El cálculo con decimales es exacto, sin deriva de punto flotante.
func TestLineCommission_Exactitud(t *testing.T) {
	got := commission.LineCommission(dec("0.1"), dec("30"))
	assert.True(t, got.Equal(dec("0.03")), "0.1 al 30%% debe ser exactamente 0.03, fue %s", got)
}
