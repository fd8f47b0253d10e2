package repository

import "github.com/dlsventas/comisiones-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	// CreateMany inserta un lote (importación CSV) en una sola llamada.
	CreateMany(clients []*entity.Client) error
	// Upsert inserta o reemplaza por ID (restauración de backup).
	Upsert(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// List devuelve todos los clientes ordenados por nombre.
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
	DeleteAll() error
}
