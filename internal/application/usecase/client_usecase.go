package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes, más la importación CSV.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. Solo el nombre es obligatorio.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// List lista todos los clientes ordenados por nombre.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de contacto de un cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	client.Name = name
	client.Phone = strings.TrimSpace(in.Phone)
	client.Email = strings.TrimSpace(in.Email)
	client.Address = strings.TrimSpace(in.Address)
	client.Notes = in.Notes
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente. Las facturas que lo referencian quedan sin
// cliente (el repositorio pone client_id en null).
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ImportCSV parsea el archivo CSV y crea los clientes en lote.
// Las filas sin nombre se descartan; devuelve cuántas entraron y cuántas no.
func (uc *ClientUseCase) ImportCSV(data []byte) (*dto.ImportClientsResponse, error) {
	rows, skipped, err := ParseClientsCSV(data)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	clients := make([]*entity.Client, 0, len(rows))
	for _, r := range rows {
		clients = append(clients, &entity.Client{
			ID:        uuid.New().String(),
			Name:      r.Name,
			Phone:     r.Phone,
			Email:     r.Email,
			CreatedAt: now,
		})
	}
	if len(clients) > 0 {
		if err := uc.repo.CreateMany(clients); err != nil {
			return nil, err
		}
	}
	return &dto.ImportClientsResponse{Imported: len(clients), Skipped: skipped}, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
