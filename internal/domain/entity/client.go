package entity

import "time"

// Client representa un cliente al que se le factura. Todos los campos de
// contacto son opcionales; una factura puede no tener cliente.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	Notes     string
	CreatedAt time.Time
}
