package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una categoría de comisión del catálogo.
// Las facturas guardan copia del nombre y el porcentaje al momento de la
// venta; editar el catálogo no altera facturas históricas.
type Product struct {
	ID         string
	Name       string
	Percentage decimal.Decimal // 0–100
	Color      string          // hex asignado de la paleta al crear
	IsDefault  bool
	CreatedAt  time.Time
}
