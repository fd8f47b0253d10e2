package stats

import "github.com/shopspring/decimal"

// Change compara un período contra el anterior.
//
// Percent es el valor absoluto del cambio porcentual. Cuando el período
// anterior es cero no hay base de comparación y se reporta 0, nunca una
// división por cero. Positive es true cuando el período actual iguala o
// supera al anterior.
type Change struct {
	Percent  decimal.Decimal
	Positive bool
}

// ChangeBetween calcula el cambio de previous a current.
func ChangeBetween(current, previous decimal.Decimal) Change {
	c := Change{Percent: decimal.Zero, Positive: current.GreaterThanOrEqual(previous)}
	if previous.IsZero() {
		return c
	}
	c.Percent = current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Abs()
	return c
}

// ChangeBetweenInts es ChangeBetween para conteos (facturas por período).
func ChangeBetweenInts(current, previous int) Change {
	return ChangeBetween(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
