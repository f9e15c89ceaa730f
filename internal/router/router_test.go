package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jpariona/ulima-campus-api/internal/handler"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
	"github.com/jpariona/ulima-campus-api/internal/router"
	"github.com/jpariona/ulima-campus-api/internal/service"
)

// In-memory stubs behind the service interfaces. Only the behavior the
// routing tests exercise is implemented; everything else returns empty
// results.

type menuStub struct {
	items []model.MenuItem
}

func (m *menuStub) List(_ context.Context) ([]model.MenuItem, error) { return m.items, nil }

func (m *menuStub) GetDetail(_ context.Context, id string) (*model.MenuItem, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, repository.ErrMenuItemNotFound
}

func (m *menuStub) Exists(_ context.Context, id string) (bool, error) {
	for _, it := range m.items {
		if it.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type orderStub struct {
	orders []model.Order
}

func (o *orderStub) Create(_ context.Context, ord *model.Order) error {
	ord.ID = "pedido-1"
	ord.Fecha = time.Now()
	o.orders = append(o.orders, *ord)
	return nil
}

func (o *orderStub) List(_ context.Context, _ string) ([]model.Order, error) {
	return o.orders, nil
}

func (o *orderStub) GetByCodigo(_ context.Context, codigo string) (*model.Order, error) {
	for i := range o.orders {
		if o.orders[i].Codigo == codigo {
			return &o.orders[i], nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

type reviewStub struct{}

func (reviewStub) ListByProduct(_ context.Context, _ string) ([]model.Review, error) {
	return nil, nil
}
func (reviewStub) GetByID(_ context.Context, _ string) (*model.Review, error) {
	return nil, repository.ErrReviewNotFound
}
func (reviewStub) Create(_ context.Context, _ *model.Review) error { return nil }

type userStub struct {
	users []model.User
}

func (u *userStub) List(_ context.Context) ([]model.User, error) { return u.users, nil }

func (u *userStub) GetByID(_ context.Context, id string) (*model.User, error) {
	for i := range u.users {
		if u.users[i].ID == id {
			return &u.users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (u *userStub) GetFirst(_ context.Context) (*model.User, error) {
	if len(u.users) == 0 {
		return nil, repository.ErrUserNotFound
	}
	return &u.users[0], nil
}

func (u *userStub) EmailExists(_ context.Context, email string) (bool, error) {
	for _, usr := range u.users {
		if usr.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (u *userStub) Create(_ context.Context, usr *model.User) error {
	usr.ID = "user-1"
	usr.CreatedAt = time.Now()
	u.users = append(u.users, *usr)
	return nil
}

func (u *userStub) UpdateRol(_ context.Context, id string, rol model.Role) (*model.User, error) {
	for i := range u.users {
		if u.users[i].ID == id {
			u.users[i].Rol = rol
			return &u.users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type sectionStub struct{}

func (sectionStub) ListByUser(_ context.Context, _ string) ([]model.Section, error) {
	return nil, nil
}
func (sectionStub) GetByID(_ context.Context, _ string) (*model.Section, error) {
	return nil, repository.ErrSectionNotFound
}
func (sectionStub) Exists(_ context.Context, _ string) (bool, error)       { return false, nil }
func (sectionStub) CodigoExists(_ context.Context, _ string) (bool, error) { return false, nil }
func (sectionStub) Create(_ context.Context, s *model.Section) error {
	s.ID = "seccion-1"
	return nil
}
func (sectionStub) MembershipExists(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}
func (sectionStub) CreateMembership(_ context.Context, _ *model.Membership) error { return nil }

type messageStub struct{}

func (messageStub) ListBySection(_ context.Context, _ string) ([]model.Message, error) {
	return nil, nil
}
func (messageStub) Create(_ context.Context, _ *model.Message) error { return nil }

type materialStub struct{}

func (materialStub) ListBySection(_ context.Context, _ string) ([]model.Material, error) {
	return nil, nil
}
func (materialStub) Create(_ context.Context, _ *model.Material) error { return nil }

type eventStub struct{}

func (eventStub) ListBySection(_ context.Context, _ string) ([]model.Event, error) {
	return nil, nil
}
func (eventStub) Create(_ context.Context, _ *model.Event) error { return nil }

func newTestServer(menu *menuStub, orders *orderStub, users *userStub) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(zap.NewNop(), true)

	router.Register(e, router.Handlers{
		Menu:    handler.NewMenuHandler(service.NewMenuService(menu)),
		Orders:  handler.NewOrderHandler(service.NewOrderService(orders)),
		Reviews: handler.NewReviewHandler(service.NewReviewService(reviewStub{}, menu)),
		Users:   handler.NewUserHandler(service.NewUserService(users)),
		Classroom: handler.NewClassroomHandler(service.NewClassroomService(
			sectionStub{}, messageStub{}, materialStub{}, eventStub{}, users,
		)),
	})
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	return rec, parsed
}

func TestHealth(t *testing.T) {
	e := newTestServer(&menuStub{}, &orderStub{}, &userStub{})

	rec, body := doJSON(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ULima API is running", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestMenuListEnvelope(t *testing.T) {
	menu := &menuStub{items: []model.MenuItem{
		{ID: "menu-1", Nombre: "Ceviche", Precio: 18.50},
		{ID: "menu-2", Nombre: "Lomo Saltado", Precio: 22.00},
	}}
	e := newTestServer(menu, &orderStub{}, &userStub{})

	rec, body := doJSON(t, e, http.MethodGet, "/api/menu", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].([]any)
	require.True(t, ok, "data must be an array")
	assert.Len(t, data, 2)
}

func TestMenuDetailNotFound(t *testing.T) {
	e := newTestServer(&menuStub{}, &orderStub{}, &userStub{})

	rec, body := doJSON(t, e, http.MethodGet, "/api/menu/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Item del menú no encontrado", body["message"])
}

func TestUnknownRouteFallback(t *testing.T) {
	e := newTestServer(&menuStub{}, &orderStub{}, &userStub{})

	rec, body := doJSON(t, e, http.MethodGet, "/api/no-existe", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Ruta no encontrada", body["message"])
}

func TestCreateUsuarioOverHTTP(t *testing.T) {
	users := &userStub{}
	e := newTestServer(&menuStub{}, &orderStub{}, users)

	rec, body := doJSON(t, e, http.MethodPost, "/api/usuarios",
		`{"nombre":"Juan Pérez","email":"juan.perez@ulima.edu.pe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alumno", data["rol"])

	// second registration with the same email
	rec, body = doJSON(t, e, http.MethodPost, "/api/usuarios",
		`{"nombre":"Otro Juan","email":"juan.perez@ulima.edu.pe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "El email ya está registrado", body["message"])
	assert.Len(t, users.users, 1)
}

func TestCreatePedidoOverHTTP(t *testing.T) {
	orders := &orderStub{}
	e := newTestServer(&menuStub{}, orders, &userStub{})

	rec, body := doJSON(t, e, http.MethodPost, "/api/pedidos",
		`{"usuarioId":"u1","items":[{"menuItemId":"menu-1","nombre":"Ceviche","cantidad":2,"precio":18.5}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 37.0, data["total"].(float64), 1e-9)
	assert.Regexp(t, regexp.MustCompile(`^PED-\d+-[0-9A-Z]{9}$`), data["codigo"])

	rec, body = doJSON(t, e, http.MethodGet, "/api/pedidos/no-such-code", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Pedido no encontrado", body["message"])
}

func TestStubEndpointsAcknowledge(t *testing.T) {
	orders := &orderStub{}
	e := newTestServer(&menuStub{}, orders, &userStub{})

	rec, body := doJSON(t, e, http.MethodPost, "/api/pedidos",
		`{"usuarioId":"u1","items":[{"menuItemId":"menu-1","nombre":"Ceviche","cantidad":1,"precio":18.5}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	codigo := body["data"].(map[string]any)["codigo"].(string)

	rec, body = doJSON(t, e, http.MethodPost, "/api/pedidos/"+codigo+"/notificacion", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Notificación enviada", body["data"].(map[string]any)["message"])

	rec, body = doJSON(t, e, http.MethodPost, "/api/pedidos/"+codigo+"/boleta", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Boleta generada y enviada", body["data"].(map[string]any)["message"])
}
