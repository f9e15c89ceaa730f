package service

import (
	"context"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
)

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	out := append([]model.User(nil), f.users...)
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) GetFirst(_ context.Context) (*model.User, error) {
	if len(f.users) == 0 {
		return nil, repository.ErrUserNotFound
	}
	return &f.users[0], nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = "user-" + u.Email
	u.CreatedAt = time.Now()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) UpdateRol(_ context.Context, id string, rol model.Role) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Rol = rol
			return &f.users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func TestCreateUsuarioDefaultsRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	u, err := svc.CreateUsuario(context.Background(), CreateUserInput{
		Nombre: "Juan Pérez", Email: "juan.perez@ulima.edu.pe",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAlumno, u.Rol)
	assert.NotEmpty(t, u.ID)
}

func TestCreateUsuarioRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.CreateUsuario(context.Background(), CreateUserInput{
		Nombre: "Juan Pérez", Email: "juan.perez@ulima.edu.pe",
	})
	require.NoError(t, err)

	_, err = svc.CreateUsuario(context.Background(), CreateUserInput{
		Nombre: "Otro Juan", Email: "juan.perez@ulima.edu.pe",
	})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "El email ya está registrado", appErr.Message)
	assert.Len(t, repo.users, 1, "user count must be unchanged")
}

func TestCreateUsuarioValidatesRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	u, err := svc.CreateUsuario(context.Background(), CreateUserInput{
		Nombre: "María García", Email: "maria.garcia@ulima.edu.pe", Rol: "PROFESOR",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleProfesor, u.Rol)

	_, err = svc.CreateUsuario(context.Background(), CreateUserInput{
		Nombre: "X", Email: "x@ulima.edu.pe", Rol: "decano",
	})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestGetUsuarioActual(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	// empty user set
	_, err := svc.GetUsuarioActual(context.Background())
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "No hay usuarios en el sistema", appErr.Message)

	_, err = svc.CreateUsuario(context.Background(), CreateUserInput{
		Nombre: "Juan Pérez", Email: "juan.perez@ulima.edu.pe",
	})
	require.NoError(t, err)

	u, err := svc.GetUsuarioActual(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "juan.perez@ulima.edu.pe", u.Email)
}

func TestUpdateRol(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	created, err := svc.CreateUsuario(context.Background(), CreateUserInput{
		Nombre: "Carlos Mendoza", Email: "carlos.mendoza@ulima.edu.pe",
	})
	require.NoError(t, err)

	u, err := svc.UpdateRol(context.Background(), created.ID, "delegado")
	require.NoError(t, err)
	assert.Equal(t, model.RoleDelegado, u.Rol)

	_, err = svc.UpdateRol(context.Background(), created.ID, "rector")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	_, err = svc.UpdateRol(context.Background(), "ghost", "alumno")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Usuario no encontrado", appErr.Message)
}
