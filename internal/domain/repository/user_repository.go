package repository

import "github.com/dlsventas/comisiones-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del API.
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail devuelve nil (sin error) si el email no existe.
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
