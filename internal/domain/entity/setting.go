package entity

import "time"

// Claves de configuración persistidas.
const (
	SettingRestPercentage = "rest_percentage"
	SettingLastNCFNumber  = "last_ncf_number"
)

// Setting es un par clave/valor de configuración global.
type Setting struct {
	ID        string
	Key       string
	Value     string
	UpdatedAt time.Time
}
