package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineRequest línea de una factura: producto especial con su monto.
// El porcentaje es opcional; si va en cero se toma el del catálogo.
type InvoiceLineRequest struct {
	ProductName string          `json:"product_name" validate:"required,min=1"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// SaveInvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// Las comisiones NO se aceptan del cliente: el servidor las recalcula siempre.
type SaveInvoiceRequest struct {
	NCFSuffix   string               `json:"ncf_suffix" validate:"required"`
	InvoiceDate string               `json:"invoice_date" validate:"required"`
	ClientID    string               `json:"client_id,omitempty"`
	SellerID    string               `json:"seller_id,omitempty"`
	TotalAmount decimal.Decimal      `json:"total_amount" validate:"required"`
	Products    []InvoiceLineRequest `json:"products" validate:"dive"`
}

// InvoiceProductResponse línea calculada de la factura.
type InvoiceProductResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Amount      decimal.Decimal `json:"amount"`
	Percentage  decimal.Decimal `json:"percentage"`
	Commission  decimal.Decimal `json:"commission"`
}

// InvoiceResponse factura con desglose completo.
type InvoiceResponse struct {
	ID              string                   `json:"id"`
	NCF             string                   `json:"ncf"`
	InvoiceDate     time.Time                `json:"invoice_date"`
	ClientID        string                   `json:"client_id,omitempty"`
	ClientName      string                   `json:"client_name,omitempty"`
	SellerID        string                   `json:"seller_id,omitempty"`
	SellerName      string                   `json:"seller_name,omitempty"`
	TotalAmount     decimal.Decimal          `json:"total_amount"`
	RestAmount      decimal.Decimal          `json:"rest_amount"`
	RestPercentage  decimal.Decimal          `json:"rest_percentage"`
	RestCommission  decimal.Decimal          `json:"rest_commission"`
	TotalCommission decimal.Decimal          `json:"total_commission"`
	Products        []InvoiceProductResponse `json:"products"`
	CreatedAt       time.Time                `json:"created_at"`
}

// InvoiceListResponse listado paginado de facturas.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Page     PageResponse      `json:"page"`
}

// BulkPercentageRequest body para PUT /api/invoices/bulk-percentage:
// reescribe el porcentaje de un producto en todas las facturas de un mes.
type BulkPercentageRequest struct {
	ProductName   string          `json:"product_name" validate:"required,min=1"`
	Year          int             `json:"year" validate:"required,min=2000,max=2100"`
	Month         int             `json:"month" validate:"required,min=1,max=12"`
	NewPercentage decimal.Decimal `json:"new_percentage" validate:"required"`
}

// BulkPercentageResponse resultado de la reescritura masiva.
type BulkPercentageResponse struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}
