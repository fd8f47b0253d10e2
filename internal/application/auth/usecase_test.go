package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsventas/comisiones-api/internal/application/auth"
	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	pkgjwt "github.com/dlsventas/comisiones-api/pkg/jwt"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "comisiones-api-test",
	})
}

func TestRegister(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, "Ana", out.Name)
	assert.NotEmpty(t, out.ID)

	// El password nunca se guarda en claro.
	stored, err := repo.FindByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_SinNombreUsaEmail(t *testing.T) {
	uc := newAuthUC(&fakeUserRepo{})

	out, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Name)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newAuthUC(&fakeUserRepo{})

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc := newAuthUC(&fakeUserRepo{})

	registered, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	// El token lleva el ID del usuario como claim.
	userID, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestLogin_Errores(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Usuario deshabilitado: credenciales correctas pero acceso denegado.
	for _, u := range repo.users {
		u.Status = "disabled"
	}
	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
