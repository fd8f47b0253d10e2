package dto

import "github.com/shopspring/decimal"

// BackupVersion versión actual del formato de backup.
const BackupVersion = "1.2"

// Backup snapshot completo de los datos en JSON. Es el mismo formato que
// genera GET /api/backup y que acepta POST /api/backup/restore.
type Backup struct {
	Version    string     `json:"version"`
	ExportDate string     `json:"exportDate"`
	Data       BackupData `json:"data"`
}

// BackupData tablas incluidas en el backup.
type BackupData struct {
	Invoices        []BackupInvoice        `json:"invoices"`
	InvoiceProducts []BackupInvoiceProduct `json:"invoice_products"`
	Clients         []BackupClient         `json:"clients"`
	Products        []BackupProduct        `json:"products"`
	Sellers         []BackupSeller         `json:"sellers"`
	Settings        []BackupSetting        `json:"settings"`
}

// BackupInvoice fila de la tabla invoices en el backup.
type BackupInvoice struct {
	ID              string          `json:"id"`
	NCF             string          `json:"ncf"`
	InvoiceDate     string          `json:"invoice_date"`
	ClientID        string          `json:"client_id,omitempty"`
	SellerID        string          `json:"seller_id,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RestAmount      decimal.Decimal `json:"rest_amount"`
	RestPercentage  decimal.Decimal `json:"rest_percentage"`
	RestCommission  decimal.Decimal `json:"rest_commission"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	CreatedAt       string          `json:"created_at"`
}

// BackupInvoiceProduct fila de invoice_products en el backup.
type BackupInvoiceProduct struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	ProductName string          `json:"product_name"`
	Amount      decimal.Decimal `json:"amount"`
	Percentage  decimal.Decimal `json:"percentage"`
	Commission  decimal.Decimal `json:"commission"`
}

// BackupClient fila de clients en el backup.
type BackupClient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}

// BackupProduct fila de products en el backup.
type BackupProduct struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	Color      string          `json:"color,omitempty"`
	IsDefault  bool            `json:"is_default"`
	CreatedAt  string          `json:"created_at"`
}

// BackupSeller fila de sellers en el backup.
type BackupSeller struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
}

// BackupSetting fila de settings en el backup.
type BackupSetting struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RestoreResponse resumen de lo restaurado.
type RestoreResponse struct {
	Invoices int `json:"invoices"`
	Clients  int `json:"clients"`
	Products int `json:"products"`
	Sellers  int `json:"sellers"`
	Settings int `json:"settings"`
}
