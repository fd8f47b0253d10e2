package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura guardada con su desglose de comisiones.
//
// Invariantes: TotalAmount == sum(Products[].Amount) + RestAmount y
// TotalCommission == sum(Products[].Commission) + RestCommission.
// El desglose se recalcula completo en cada creación o edición; nunca se
// persiste un desglose parcial.
type Invoice struct {
	ID              string
	NCF             string // número fiscal, único: prefijo fijo + sufijo de 4 dígitos
	InvoiceDate     time.Time
	ClientID        string // vacío = factura sin cliente
	SellerID        string // vacío = sin vendedor asignado
	TotalAmount     decimal.Decimal
	RestAmount      decimal.Decimal // residual no atribuido a productos especiales, >= 0
	RestPercentage  decimal.Decimal
	RestCommission  decimal.Decimal
	TotalCommission decimal.Decimal
	Products        []InvoiceProduct
	CreatedAt       time.Time
}

// InvoiceProduct es una línea de producto especial dentro de una factura.
// Nombre y porcentaje son una foto del catálogo al momento de la venta.
type InvoiceProduct struct {
	ID          string
	InvoiceID   string
	ProductName string
	Amount      decimal.Decimal
	Percentage  decimal.Decimal
	Commission  decimal.Decimal
}
