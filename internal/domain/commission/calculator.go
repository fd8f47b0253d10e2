// Package commission implementa el cálculo de comisiones de una factura
// (servicio de dominio, puro) y el formato del NCF.
//
// Regla de negocio:
//
//	comisiónProducto = monto * (porcentaje / 100)         por cada producto especial
//	resto            = max(0, totalFactura - Σ montos)    nunca negativo
//	comisiónResto    = resto * (porcentajeResto / 100)
//	comisiónTotal    = Σ comisionesProducto + comisiónResto
//
// Todo el dinero se maneja con decimal.Decimal exacto; el redondeo a dos
// decimales ocurre solo en la capa de presentación.
package commission

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line es la entrada de un producto especial: monto vendido y porcentaje
// de comisión (foto del catálogo al momento de la venta).
type Line struct {
	Name       string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// LineResult es una línea con su comisión calculada.
type LineResult struct {
	Name       string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
	Commission decimal.Decimal
}

// Breakdown es el desglose completo de una factura.
type Breakdown struct {
	Lines           []LineResult
	RestAmount      decimal.Decimal
	RestPercentage  decimal.Decimal
	RestCommission  decimal.Decimal
	TotalCommission decimal.Decimal
}

// Rate devuelve percentage/100 como factor.
func Rate(percentage decimal.Decimal) decimal.Decimal {
	return percentage.Div(hundred)
}

// LineCommission calcula la comisión de un monto a un porcentaje dado.
func LineCommission(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(Rate(percentage))
}

// Calculate computa el desglose de la factura. Es determinista y no valida
// entradas: montos negativos o porcentajes fuera de rango se rechazan antes,
// en el borde de entrada. Si los montos especiales exceden el total, el resto
// se fija en cero y el exceso se absorbe sin error.
func Calculate(totalInvoice decimal.Decimal, lines []Line, restPercentage decimal.Decimal) Breakdown {
	results := make([]LineResult, 0, len(lines))
	specialTotal := decimal.Zero
	linesCommission := decimal.Zero

	for _, l := range lines {
		c := LineCommission(l.Amount, l.Percentage)
		results = append(results, LineResult{
			Name:       l.Name,
			Amount:     l.Amount,
			Percentage: l.Percentage,
			Commission: c,
		})
		specialTotal = specialTotal.Add(l.Amount)
		linesCommission = linesCommission.Add(c)
	}

	restAmount := totalInvoice.Sub(specialTotal)
	if restAmount.IsNegative() {
		restAmount = decimal.Zero
	}
	restCommission := LineCommission(restAmount, restPercentage)

	return Breakdown{
		Lines:           results,
		RestAmount:      restAmount,
		RestPercentage:  restPercentage,
		RestCommission:  restCommission,
		TotalCommission: linesCommission.Add(restCommission),
	}
}
