package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain"
)

func TestProductCreate_AsignaColorDePaleta(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	// Los primeros productos reciben los colores de la paleta en orden.
	expected := []string{"#10b981", "#f59e0b", "#6366f1"}
	for i, color := range expected {
		out, err := uc.Create(dto.CreateProductRequest{
			Name:       fmt.Sprintf("Producto %d", i),
			Percentage: dec("5"),
		})
		require.NoError(t, err)
		assert.Equal(t, color, out.Color)
	}

	// Un color explícito se respeta tal cual.
	out, err := uc.Create(dto.CreateProductRequest{
		Name:       "Con color",
		Percentage: dec("5"),
		Color:      "#000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "#000000", out.Color)
}

func TestProductCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Create(dto.CreateProductRequest{Name: "Premium", Percentage: dec("5")})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Premium", Percentage: dec("8")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Create(dto.CreateProductRequest{Name: "   ", Percentage: dec("5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Premium", Percentage: dec("101")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Premium", Percentage: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	created, err := uc.Create(dto.CreateProductRequest{Name: "Premium", Percentage: dec("5")})
	require.NoError(t, err)
	other, err := uc.Create(dto.CreateProductRequest{Name: "Gold", Percentage: dec("4")})
	require.NoError(t, err)

	// Renombrar al nombre de otro producto debe fallar.
	_, err = uc.Update(other.ID, dto.UpdateProductRequest{Name: "Premium", Percentage: dec("4")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Conservar el propio nombre con otro porcentaje es válido.
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: "Premium", Percentage: dec("9")})
	require.NoError(t, err)
	assert.True(t, out.Percentage.Equal(dec("9")))
	assert.Equal(t, created.Color, out.Color, "sin color en el request se conserva el actual")

	// ID inexistente: nil sin error, el handler lo convierte en 404.
	missing, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: "X", Percentage: dec("1")})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductDelete_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
