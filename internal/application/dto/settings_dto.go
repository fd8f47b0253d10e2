package dto

import "github.com/shopspring/decimal"

// SettingsResponse configuración global del calculador.
// SuggestedNCF es el siguiente NCF completo listo para usar en una factura nueva.
type SettingsResponse struct {
	RestPercentage decimal.Decimal `json:"rest_percentage"`
	LastNCFNumber  int             `json:"last_ncf_number"`
	SuggestedNCF   string          `json:"suggested_ncf"`
}

// UpdateSettingsRequest body para PUT /api/settings. Campos opcionales:
// solo se actualizan los presentes.
type UpdateSettingsRequest struct {
	RestPercentage *decimal.Decimal `json:"rest_percentage,omitempty"`
	LastNCFNumber  *int             `json:"last_ncf_number,omitempty" validate:"omitempty,min=0,max=9999"`
}
