package service

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
)

type fakeOrderRepo struct {
	orders []model.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, o *model.Order) error {
	o.ID = "order-" + o.Codigo
	o.Fecha = time.Now()
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, usuarioID string) ([]model.Order, error) {
	if usuarioID == "" {
		return f.orders, nil
	}
	var out []model.Order
	for _, o := range f.orders {
		if o.UsuarioID == usuarioID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByCodigo(_ context.Context, codigo string) (*model.Order, error) {
	for i := range f.orders {
		if f.orders[i].Codigo == codigo {
			return &f.orders[i], nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func orderInput(usuarioID string) CreateOrderInput {
	var in CreateOrderInput
	in.UsuarioID = usuarioID
	in.Items = []struct {
		MenuItemID string  `json:"menuItemId"`
		Nombre     string  `json:"nombre"`
		Cantidad   int     `json:"cantidad"`
		Precio     float64 `json:"precio"`
	}{
		{MenuItemID: "m1", Nombre: "Ceviche de Pescado", Cantidad: 1, Precio: 18.50},
		{MenuItemID: "m2", Nombre: "Lomo Saltado", Cantidad: 2, Precio: 22.00},
	}
	return in
}

func TestCreateOrderComputesTotalAndPersistsItems(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	order, err := svc.CreateOrder(context.Background(), orderInput("u1"))
	require.NoError(t, err)

	assert.InDelta(t, 18.50+2*22.00, order.Total, 1e-9)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "u1", order.UsuarioID)
	assert.Equal(t, "Ceviche de Pescado", order.Items[0].Nombre)
	require.Len(t, repo.orders, 1)
}

var codeRe = regexp.MustCompile(`^PED-\d+-[0-9A-Z]{9}$`)

func TestOrderCodesMatchPatternAndAreDistinct(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		order, err := svc.CreateOrder(context.Background(), orderInput("u1"))
		require.NoError(t, err)
		assert.Regexp(t, codeRe, order.Codigo)
		assert.False(t, seen[order.Codigo], "duplicate code %s", order.Codigo)
		seen[order.Codigo] = true
	}
}

func TestCreateOrderValidatesInput(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	_, err := svc.CreateOrder(context.Background(), orderInput(""))
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	in := orderInput("u1")
	in.Items = nil
	_, err = svc.CreateOrder(context.Background(), in)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestGetPedidoByCodigoNotFound(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	_, err := svc.GetPedidoByCodigo(context.Background(), "PED-0-XXXXXXXXX")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Pedido no encontrado", appErr.Message)
}

func TestStubOperationsValidateExistence(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)
	order, err := svc.CreateOrder(context.Background(), orderInput("u1"))
	require.NoError(t, err)

	ack, err := svc.EnviarNotificacion(context.Background(), order.Codigo)
	require.NoError(t, err)
	assert.Equal(t, "Notificación enviada", ack.Message)
	assert.Equal(t, order.Codigo, ack.Pedido.Codigo)

	ack, err = svc.GenerarBoleta(context.Background(), order.Codigo)
	require.NoError(t, err)
	assert.Equal(t, "Boleta generada y enviada", ack.Message)

	_, err = svc.EnviarNotificacion(context.Background(), "missing")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestGetHistorialFiltersByUser(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)
	_, err := svc.CreateOrder(context.Background(), orderInput("u1"))
	require.NoError(t, err)
	_, err = svc.CreateOrder(context.Background(), orderInput("u2"))
	require.NoError(t, err)

	all, err := svc.GetHistorial(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.GetHistorial(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "u2", mine[0].UsuarioID)
}
