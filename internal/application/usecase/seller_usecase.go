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

// SellerUseCase casos de uso CRUD para vendedores.
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// Create crea un vendedor. Si pide ser default, desplaza al actual.
func (uc *SellerUseCase) Create(in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	seller := &entity.Seller{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(seller); err != nil {
		return nil, err
	}
	if in.IsDefault {
		if err := uc.repo.SetDefault(seller.ID); err != nil {
			return nil, err
		}
		seller.IsDefault = true
	}
	return toSellerResponse(seller), nil
}

// GetByID obtiene un vendedor por ID; nil si no existe.
func (uc *SellerUseCase) GetByID(id string) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, nil
	}
	return toSellerResponse(seller), nil
}

// List lista los vendedores, default primero.
func (uc *SellerUseCase) List() ([]dto.SellerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SellerResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSellerResponse(s))
	}
	return out, nil
}

// Update actualiza los datos del vendedor (el flag default se cambia con SetDefault).
func (uc *SellerUseCase) Update(id string, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, nil
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	seller.Name = name
	seller.Email = strings.TrimSpace(in.Email)
	seller.Phone = strings.TrimSpace(in.Phone)
	if err := uc.repo.Update(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// SetDefault marca al vendedor como default y desmarca al resto.
func (uc *SellerUseCase) SetDefault(id string) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetDefault(id); err != nil {
		return nil, err
	}
	seller.IsDefault = true
	return toSellerResponse(seller), nil
}

// Delete elimina un vendedor. Las facturas que lo referencian quedan sin
// vendedor asignado.
func (uc *SellerUseCase) Delete(id string) error {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if seller == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	if s == nil {
		return nil
	}
	return &dto.SellerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		IsDefault: s.IsDefault,
		CreatedAt: s.CreatedAt,
	}
}
