package repository

import "github.com/dlsventas/comisiones-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo de
// productos de comisión.
type ProductRepository interface {
	Create(product *entity.Product) error
	Upsert(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// List devuelve el catálogo en orden de creación.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
