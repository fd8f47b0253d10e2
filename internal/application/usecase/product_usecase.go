package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
)

// Paleta de colores para el catálogo. Al crear un producto sin color se
// asigna el siguiente de la paleta según cuántos productos existen.
var productColors = []string{
	"#10b981", "#f59e0b", "#6366f1", "#ec4899",
	"#8b5cf6", "#14b8a6", "#f97316", "#06b6d4",
}

var percentMax = decimal.NewFromInt(100)

// ProductUseCase casos de uso CRUD para el catálogo de productos de comisión.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. El nombre es único en el catálogo y el
// porcentaje debe estar en [0, 100].
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Percentage.IsNegative() || in.Percentage.GreaterThan(percentMax) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	color := in.Color
	if color == "" {
		list, err := uc.repo.List()
		if err != nil {
			return nil, err
		}
		color = productColors[len(list)%len(productColors)]
	}
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       name,
		Percentage: in.Percentage,
		Color:      color,
		IsDefault:  false,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista el catálogo en orden de creación.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza nombre, porcentaje y color. Los cambios no tocan las
// facturas ya guardadas: esas conservan su foto del catálogo.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Percentage.IsNegative() || in.Percentage.GreaterThan(percentMax) {
		return nil, domain.ErrInvalidInput
	}
	if other, _ := uc.repo.GetByName(name); other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	product.Name = name
	product.Percentage = in.Percentage
	if in.Color != "" {
		product.Color = in.Color
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Percentage: p.Percentage,
		Color:      p.Color,
		IsDefault:  p.IsDefault,
		CreatedAt:  p.CreatedAt,
	}
}
