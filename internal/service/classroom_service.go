package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
)

// SectionRepository is the slice of repository.SectionRepo the classroom
// service needs.
type SectionRepository interface {
	ListByUser(ctx context.Context, usuarioID string) ([]model.Section, error)
	GetByID(ctx context.Context, id string) (*model.Section, error)
	Exists(ctx context.Context, id string) (bool, error)
	CodigoExists(ctx context.Context, codigo string) (bool, error)
	Create(ctx context.Context, s *model.Section) error
	MembershipExists(ctx context.Context, seccionID, usuarioID string) (bool, error)
	CreateMembership(ctx context.Context, m *model.Membership) error
}

// MessageRepository stores section chat messages.
type MessageRepository interface {
	ListBySection(ctx context.Context, seccionID string) ([]model.Message, error)
	Create(ctx context.Context, m *model.Message) error
}

// MaterialRepository stores shared section materials.
type MaterialRepository interface {
	ListBySection(ctx context.Context, seccionID string) ([]model.Material, error)
	Create(ctx context.Context, m *model.Material) error
}

// EventRepository stores section calendar events.
type EventRepository interface {
	ListBySection(ctx context.Context, seccionID string) ([]model.Event, error)
	Create(ctx context.Context, e *model.Event) error
}

// UserChecker verifies that a referenced author user exists.
type UserChecker interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// CreateSectionInput is the request shape for section creation.
type CreateSectionInput struct {
	Nombre         string  `json:"nombre"`
	Codigo         string  `json:"codigo"`
	CursoNombre    string  `json:"cursoNombre"`
	ProfesorNombre string  `json:"profesorNombre"`
	DelegadoNombre *string `json:"delegadoNombre"`
}

// CreateMessageInput is the request shape for posting a chat message or
// announcement. Fecha is optional ISO-8601 text; the storage default applies
// when empty.
type CreateMessageInput struct {
	Contenido   string `json:"contenido"`
	AutorID     string `json:"autorId"`
	AutorNombre string `json:"autorNombre"`
	EsAnuncio   bool   `json:"esAnuncio"`
	Fecha       string `json:"fecha"`
}

// CreateMaterialInput is the request shape for sharing a material.
type CreateMaterialInput struct {
	Nombre      string `json:"nombre"`
	Tipo        string `json:"tipo"`
	URL         string `json:"url"`
	AutorID     string `json:"autorId"`
	AutorNombre string `json:"autorNombre"`
}

// CreateEventInput is the request shape for creating a calendar event. Fecha
// is ISO-8601 text, normalized before parsing (see normalizeFecha).
type CreateEventInput struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"`
	Tipo        string `json:"tipo"`
	AutorID     string `json:"autorId"`
}

// ClassroomService implements sections, memberships, messages, materials and
// events.
type ClassroomService struct {
	sections  SectionRepository
	messages  MessageRepository
	materials MaterialRepository
	events    EventRepository
	users     UserChecker
}

// NewClassroomService constructs a ClassroomService.
func NewClassroomService(sections SectionRepository, messages MessageRepository, materials MaterialRepository, events EventRepository, users UserChecker) *ClassroomService {
	return &ClassroomService{
		sections:  sections,
		messages:  messages,
		materials: materials,
		events:    events,
		users:     users,
	}
}

// ==================== SECCIONES ====================

// GetSeccionesUsuario returns the sections a user belongs to.
func (s *ClassroomService) GetSeccionesUsuario(ctx context.Context, usuarioID string) ([]model.Section, error) {
	return s.sections.ListByUser(ctx, usuarioID)
}

// GetSeccionDetail fetches one section.
func (s *ClassroomService) GetSeccionDetail(ctx context.Context, seccionID string) (*model.Section, error) {
	sec, err := s.sections.GetByID(ctx, seccionID)
	if err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			return nil, apperror.NotFound("Sección no encontrada")
		}
		return nil, err
	}
	return sec, nil
}

// CreateSeccion creates a section, rejecting duplicate codes.
func (s *ClassroomService) CreateSeccion(ctx context.Context, in CreateSectionInput) (*model.Section, error) {
	taken, err := s.sections.CodigoExists(ctx, in.Codigo)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("El código de sección ya existe")
	}

	sec := &model.Section{
		Nombre:         in.Nombre,
		Codigo:         in.Codigo,
		CursoNombre:    in.CursoNombre,
		ProfesorNombre: in.ProfesorNombre,
		DelegadoNombre: in.DelegadoNombre,
	}
	if err := s.sections.Create(ctx, sec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("El código de sección ya existe")
		}
		return nil, err
	}
	return sec, nil
}

// AsignarUsuarioSeccion adds a user to a section, rejecting duplicate
// memberships.
func (s *ClassroomService) AsignarUsuarioSeccion(ctx context.Context, seccionID, usuarioID string) (*model.Membership, error) {
	secOK, err := s.sections.Exists(ctx, seccionID)
	if err != nil {
		return nil, err
	}
	var userOK bool
	if _, err := s.users.GetByID(ctx, usuarioID); err == nil {
		userOK = true
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}
	if !secOK || !userOK {
		return nil, apperror.NotFound("Sección o usuario no encontrado")
	}

	assigned, err := s.sections.MembershipExists(ctx, seccionID, usuarioID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, apperror.Conflict("El usuario ya está asignado a esta sección")
	}

	m := &model.Membership{UsuarioID: usuarioID, SeccionID: seccionID}
	if err := s.sections.CreateMembership(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("El usuario ya está asignado a esta sección")
		}
		return nil, err
	}
	return m, nil
}

// ==================== MENSAJES ====================

// GetMensajes returns the full chat history of a section, oldest first.
func (s *ClassroomService) GetMensajes(ctx context.Context, seccionID string) ([]model.Message, error) {
	return s.messages.ListBySection(ctx, seccionID)
}

// EnviarMensaje posts a chat message or announcement to a section.
func (s *ClassroomService) EnviarMensaje(ctx context.Context, seccionID string, in CreateMessageInput) (*model.Message, error) {
	ok, err := s.sections.Exists(ctx, seccionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("Sección no encontrada")
	}

	msg := &model.Message{
		Contenido:   in.Contenido,
		AutorID:     in.AutorID,
		AutorNombre: in.AutorNombre,
		SeccionID:   seccionID,
		EsAnuncio:   in.EsAnuncio,
	}
	if in.Fecha != "" {
		t, err := normalizeFecha(in.Fecha)
		if err != nil {
			return nil, apperror.BadRequest("Fecha inválida. Use formato ISO 8601")
		}
		msg.Fecha = t
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ==================== MATERIALES ====================

// GetMateriales returns the shared materials of a section, newest first.
func (s *ClassroomService) GetMateriales(ctx context.Context, seccionID string) ([]model.Material, error) {
	return s.materials.ListBySection(ctx, seccionID)
}

// SubirMaterial shares a material in a section. Role-based authorization
// (profesor/delegado only) is a documented gap; any existing user passes.
func (s *ClassroomService) SubirMaterial(ctx context.Context, seccionID string, in CreateMaterialInput) (*model.Material, error) {
	if in.Nombre == "" || in.Tipo == "" || in.URL == "" || in.AutorID == "" || in.AutorNombre == "" {
		return nil, apperror.BadRequest("Faltan campos obligatorios: nombre, tipo, url, autorId, autorNombre")
	}

	ok, err := s.sections.Exists(ctx, seccionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("Sección no encontrada")
	}
	if _, err := s.users.GetByID(ctx, in.AutorID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.NotFound("Usuario (autor) no encontrado")
		}
		return nil, err
	}

	tipo, valid := model.ParseMaterialType(in.Tipo)
	if !valid {
		return nil, apperror.BadRequest("Tipo de material inválido. Debe ser uno de: pdf, video, imagen, documento, otro")
	}

	mat := &model.Material{
		Nombre:      in.Nombre,
		Tipo:        tipo,
		URL:         in.URL,
		AutorID:     in.AutorID,
		AutorNombre: in.AutorNombre,
		SeccionID:   seccionID,
	}
	if err := s.materials.Create(ctx, mat); err != nil {
		return nil, err
	}
	return mat, nil
}

// ==================== EVENTOS ====================

// GetEventos returns the calendar events of a section by event date
// ascending.
func (s *ClassroomService) GetEventos(ctx context.Context, seccionID string) ([]model.Event, error) {
	return s.events.ListBySection(ctx, seccionID)
}

// CrearEvento creates a calendar event. The date arrives as ISO-8601 text and
// goes through normalizeFecha before parsing. Role-based authorization is a
// documented gap; any existing user passes.
func (s *ClassroomService) CrearEvento(ctx context.Context, seccionID string, in CreateEventInput) (*model.Event, error) {
	if in.Titulo == "" || in.Descripcion == "" || in.Fecha == "" || in.Tipo == "" || in.AutorID == "" {
		return nil, apperror.BadRequest("Faltan campos obligatorios: titulo, descripcion, fecha, tipo, autorId")
	}

	ok, err := s.sections.Exists(ctx, seccionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("Sección no encontrada")
	}
	if _, err := s.users.GetByID(ctx, in.AutorID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.NotFound("Usuario (autor) no encontrado")
		}
		return nil, err
	}

	fecha, err := normalizeFecha(in.Fecha)
	if err != nil {
		return nil, apperror.BadRequest("Fecha inválida. Use formato ISO 8601")
	}

	tipo, valid := model.ParseEventType(in.Tipo)
	if !valid {
		return nil, apperror.BadRequest("Tipo de evento inválido. Debe ser uno de: entrega, evaluacion, evento")
	}

	ev := &model.Event{
		Titulo:      in.Titulo,
		Descripcion: in.Descripcion,
		Fecha:       fecha,
		Tipo:        tipo,
		AutorID:     in.AutorID,
		SeccionID:   seccionID,
	}
	if err := s.events.Create(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// fracRe matches fractional seconds carrying more than millisecond precision.
var fracRe = regexp.MustCompile(`(\.\d{3})\d+`)

var errInvalidFecha = errors.New("invalid fecha")

// normalizeFecha fixes up the inconsistent timestamp formats upstream clients
// send. Two steps, in this order: fractional-second digits beyond three are
// truncated, then a UTC designator is appended when the string carries no
// trailing Z and no timezone offset. Changing the order would silently shift
// event times for offset-carrying inputs.
func normalizeFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	s = fracRe.ReplaceAllString(s, "$1")
	// An offset minus sign can only appear after the date portion, so the
	// first ten characters (YYYY-MM-DD) are skipped when looking for one.
	hasOffset := strings.Contains(s, "+") || (len(s) > 10 && strings.Contains(s[10:], "-"))
	if !strings.HasSuffix(s, "Z") && !hasOffset {
		s += "Z"
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidFecha
}
