package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain"
)

func TestSellerCreate_ConDefault(t *testing.T) {
	repo := &fakeSellerRepo{}
	uc := usecase.NewSellerUseCase(repo)

	first, err := uc.Create(dto.CreateSellerRequest{Name: "Pedro", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	// El segundo default desplaza al primero.
	second, err := uc.Create(dto.CreateSellerRequest{Name: "Lucía", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lucía", list[0].Name, "el default encabeza el listado")
	assert.True(t, list[0].IsDefault)
	assert.False(t, list[1].IsDefault, "nunca hay dos defaults a la vez")
}

func TestSellerSetDefault(t *testing.T) {
	repo := &fakeSellerRepo{}
	uc := usecase.NewSellerUseCase(repo)

	a, err := uc.Create(dto.CreateSellerRequest{Name: "Pedro", IsDefault: true})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateSellerRequest{Name: "Lucía"})
	require.NoError(t, err)

	out, err := uc.SetDefault(b.ID)
	require.NoError(t, err)
	assert.True(t, out.IsDefault)

	prev, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.False(t, prev.IsDefault)

	_, err = uc.SetDefault("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSellerCreate_NombreRequerido(t *testing.T) {
	uc := usecase.NewSellerUseCase(&fakeSellerRepo{})
	_, err := uc.Create(dto.CreateSellerRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
