package entity

import "time"

// Seller representa un vendedor. Se usa solo para etiquetar reportes y
// estadísticas; no participa en el cálculo de comisiones.
// A lo sumo un vendedor puede ser el default a la vez.
type Seller struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	IsDefault bool
	CreatedAt time.Time
}
