package entity

import "time"

// User representa un usuario de la aplicación (acceso al API).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
