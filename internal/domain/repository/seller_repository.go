package repository

import "github.com/dlsventas/comisiones-api/internal/domain/entity"

// SellerRepository define el puerto de persistencia para vendedores.
type SellerRepository interface {
	Create(seller *entity.Seller) error
	Upsert(seller *entity.Seller) error
	GetByID(id string) (*entity.Seller, error)
	// List devuelve los vendedores, default primero y luego por nombre.
	List() ([]*entity.Seller, error)
	Update(seller *entity.Seller) error
	Delete(id string) error
	// SetDefault marca al vendedor como default y desmarca al resto en la
	// misma operación: nunca hay dos defaults a la vez.
	SetDefault(id string) error
}
