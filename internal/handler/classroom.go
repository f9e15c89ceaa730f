package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/service"
)

// ClassroomHandler exposes sections, memberships, messages, materials and
// events under /api/aula-virtual.
type ClassroomHandler struct {
	svc *service.ClassroomService
}

// NewClassroomHandler constructs a ClassroomHandler.
func NewClassroomHandler(svc *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{svc: svc}
}

// GetSeccionesUsuario handles GET /api/aula-virtual/usuarios/:usuarioId/secciones.
func (h *ClassroomHandler) GetSeccionesUsuario(c echo.Context) error {
	sections, err := h.svc.GetSeccionesUsuario(c.Request().Context(), c.Param("usuarioId"))
	if err != nil {
		return err
	}
	return respondOK(c, sections)
}

// GetSeccionDetail handles GET /api/aula-virtual/secciones/:seccionId.
func (h *ClassroomHandler) GetSeccionDetail(c echo.Context) error {
	section, err := h.svc.GetSeccionDetail(c.Request().Context(), c.Param("seccionId"))
	if err != nil {
		return err
	}
	return respondOK(c, section)
}

// CreateSeccion handles POST /api/aula-virtual/secciones.
func (h *ClassroomHandler) CreateSeccion(c echo.Context) error {
	var in service.CreateSectionInput
	if err := c.Bind(&in); err != nil {
		return apperror.BadRequest("Cuerpo de solicitud inválido")
	}
	section, err := h.svc.CreateSeccion(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respondCreated(c, section)
}

// AsignarUsuarioSeccion handles POST /api/aula-virtual/secciones/:seccionId/usuarios/:usuarioId.
func (h *ClassroomHandler) AsignarUsuarioSeccion(c echo.Context) error {
	m, err := h.svc.AsignarUsuarioSeccion(c.Request().Context(), c.Param("seccionId"), c.Param("usuarioId"))
	if err != nil {
		return err
	}
	return respondCreated(c, m)
}

// GetMensajes handles GET /api/aula-virtual/secciones/:seccionId/mensajes.
func (h *ClassroomHandler) GetMensajes(c echo.Context) error {
	messages, err := h.svc.GetMensajes(c.Request().Context(), c.Param("seccionId"))
	if err != nil {
		return err
	}
	return respondOK(c, messages)
}

// EnviarMensaje handles POST /api/aula-virtual/secciones/:seccionId/mensajes.
func (h *ClassroomHandler) EnviarMensaje(c echo.Context) error {
	var in service.CreateMessageInput
	if err := c.Bind(&in); err != nil {
		return apperror.BadRequest("Cuerpo de solicitud inválido")
	}
	msg, err := h.svc.EnviarMensaje(c.Request().Context(), c.Param("seccionId"), in)
	if err != nil {
		return err
	}
	return respondCreated(c, msg)
}

// GetMateriales handles GET /api/aula-virtual/secciones/:seccionId/materiales.
func (h *ClassroomHandler) GetMateriales(c echo.Context) error {
	materials, err := h.svc.GetMateriales(c.Request().Context(), c.Param("seccionId"))
	if err != nil {
		return err
	}
	return respondOK(c, materials)
}

// SubirMaterial handles POST /api/aula-virtual/secciones/:seccionId/materiales.
func (h *ClassroomHandler) SubirMaterial(c echo.Context) error {
	var in service.CreateMaterialInput
	if err := c.Bind(&in); err != nil {
		return apperror.BadRequest("Cuerpo de solicitud inválido")
	}
	mat, err := h.svc.SubirMaterial(c.Request().Context(), c.Param("seccionId"), in)
	if err != nil {
		return err
	}
	return respondCreated(c, mat)
}

// GetEventos handles GET /api/aula-virtual/secciones/:seccionId/eventos.
func (h *ClassroomHandler) GetEventos(c echo.Context) error {
	events, err := h.svc.GetEventos(c.Request().Context(), c.Param("seccionId"))
	if err != nil {
		return err
	}
	return respondOK(c, events)
}

// CrearEvento handles POST /api/aula-virtual/secciones/:seccionId/eventos.
func (h *ClassroomHandler) CrearEvento(c echo.Context) error {
	var in service.CreateEventInput
	if err := c.Bind(&in); err != nil {
		return apperror.BadRequest("Cuerpo de solicitud inválido")
	}
	ev, err := h.svc.CrearEvento(c.Request().Context(), c.Param("seccionId"), in)
	if err != nil {
		return err
	}
	return respondCreated(c, ev)
}
