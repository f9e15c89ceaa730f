package service

import (
	"context"
	"errors"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
)

// UserRepository is the slice of repository.UserRepo the user service needs.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetFirst(ctx context.Context) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *model.User) error
	UpdateRol(ctx context.Context, id string, rol model.Role) (*model.User, error)
}

// CreateUserInput is the request shape for user creation. Rol is optional and
// defaults to alumno.
type CreateUserInput struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// UserService implements the user directory.
type UserService struct {
	users UserRepository
}

// NewUserService constructs a UserService.
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// GetUsuarios lists all users ordered by name.
func (s *UserService) GetUsuarios(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// GetUsuarioByID fetches one user.
func (s *UserService) GetUsuarioByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.NotFound("Usuario no encontrado")
		}
		return nil, err
	}
	return u, nil
}

// GetUsuarioActual returns an arbitrary user (first stored row). This is an
// explicit placeholder for a missing authentication layer, NOT a session
// concept: there is no identity attached to requests anywhere in this API.
// TODO: replace with the authenticated user once JWT auth lands.
func (s *UserService) GetUsuarioActual(ctx context.Context) (*model.User, error) {
	u, err := s.users.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.NotFound("No hay usuarios en el sistema")
		}
		return nil, err
	}
	return u, nil
}

// CreateUsuario registers a user, rejecting duplicate emails. The role
// defaults to alumno when omitted and must belong to the closed role set
// otherwise.
func (s *UserService) CreateUsuario(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if in.Nombre == "" || in.Email == "" {
		return nil, apperror.BadRequest("Faltan campos obligatorios: nombre, email")
	}

	rol := model.RoleAlumno
	if in.Rol != "" {
		parsed, ok := model.ParseRole(in.Rol)
		if !ok {
			return nil, apperror.BadRequest("Rol inválido. Debe ser uno de: alumno, profesor, delegado")
		}
		rol = parsed
	}

	taken, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("El email ya está registrado")
	}

	u := &model.User{Nombre: in.Nombre, Email: in.Email, Rol: rol}
	if err := s.users.Create(ctx, u); err != nil {
		// A concurrent registration can pass the pre-check and lose the
		// insert race; the unique index reports it here.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("El email ya está registrado")
		}
		return nil, err
	}
	return u, nil
}

// UpdateRol changes a user's role. There is no caller authorization here;
// role checks are a documented gap in this API.
func (s *UserService) UpdateRol(ctx context.Context, id, rol string) (*model.User, error) {
	parsed, ok := model.ParseRole(rol)
	if !ok {
		return nil, apperror.BadRequest("Rol inválido. Debe ser uno de: alumno, profesor, delegado")
	}
	u, err := s.users.UpdateRol(ctx, id, parsed)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.NotFound("Usuario no encontrado")
		}
		return nil, err
	}
	return u, nil
}
