package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/service"
)

// UserHandler exposes the user directory.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUsuarios handles GET /api/usuarios.
func (h *UserHandler) GetUsuarios(c echo.Context) error {
	users, err := h.svc.GetUsuarios(c.Request().Context())
	if err != nil {
		return err
	}
	return respondOK(c, users)
}

// GetUsuarioActual handles GET /api/usuarios/actual. The returned user is a
// placeholder for a missing authentication layer, not a real session.
func (h *UserHandler) GetUsuarioActual(c echo.Context) error {
	user, err := h.svc.GetUsuarioActual(c.Request().Context())
	if err != nil {
		return err
	}
	return respondOK(c, user)
}

// GetUsuarioByID handles GET /api/usuarios/:id.
func (h *UserHandler) GetUsuarioByID(c echo.Context) error {
	user, err := h.svc.GetUsuarioByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondOK(c, user)
}

// CreateUsuario handles POST /api/usuarios.
func (h *UserHandler) CreateUsuario(c echo.Context) error {
	var in service.CreateUserInput
	if err := c.Bind(&in); err != nil {
		return apperror.BadRequest("Cuerpo de solicitud inválido")
	}
	user, err := h.svc.CreateUsuario(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respondCreated(c, user)
}

// UpdateRol handles PATCH /api/usuarios/:id/rol.
func (h *UserHandler) UpdateRol(c echo.Context) error {
	var body struct {
		Rol string `json:"rol"`
	}
	if err := c.Bind(&body); err != nil {
		return apperror.BadRequest("Cuerpo de solicitud inválido")
	}
	user, err := h.svc.UpdateRol(c.Request().Context(), c.Param("id"), body.Rol)
	if err != nil {
		return err
	}
	return respondOK(c, user)
}
