package repository

import (
	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas.
// Cabecera y líneas se escriben juntas: una factura guardada nunca queda a
// medias desde el punto de vista del dominio.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// Update reemplaza cabecera y líneas completas (el desglose siempre se
	// recalcula entero en una edición).
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNCF(ncf string) (*entity.Invoice, error)
	// List devuelve todas las facturas con sus líneas, más reciente primero.
	List() ([]*entity.Invoice, error)
	// UpdateProductPercentage reescribe porcentaje y comisión de una línea y
	// el total de la factura. Es la unidad del rewrite masivo: una factura a
	// la vez, sin transacción que las agrupe.
	UpdateProductPercentage(invoiceID, productName string, percentage, commission, totalCommission decimal.Decimal) error
	// DeleteAll vacía facturas y líneas (restauración de backup).
	DeleteAll() error
}
