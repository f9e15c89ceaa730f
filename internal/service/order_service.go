package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
)

// OrderRepository is the slice of repository.OrderRepo the order service
// needs.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	List(ctx context.Context, usuarioID string) ([]model.Order, error)
	GetByCodigo(ctx context.Context, codigo string) (*model.Order, error)
}

// CreateOrderInput is the request shape for order creation. Item prices are
// taken as supplied by the client; the total is NOT re-validated against the
// live catalog. That trust-the-client behavior is part of the existing
// contract and preserved deliberately.
type CreateOrderInput struct {
	UsuarioID string `json:"usuarioId"`
	Items     []struct {
		MenuItemID string  `json:"menuItemId"`
		Nombre     string  `json:"nombre"`
		Cantidad   int     `json:"cantidad"`
		Precio     float64 `json:"precio"`
	} `json:"items"`
}

// OrderAck is the response of the notification and receipt stubs: a fixed
// acknowledgment message plus the order it refers to. Neither operation
// performs real work yet; both are seams for future integrations.
type OrderAck struct {
	Message string       `json:"message"`
	Pedido  *model.Order `json:"pedido"`
}

// OrderService implements order creation, history and the stub operations.
type OrderService struct {
	orders OrderRepository
}

// NewOrderService constructs an OrderService.
func NewOrderService(orders OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// CreateOrder computes the total over the supplied items, generates the order
// code and persists order plus line items as one unit.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	if in.UsuarioID == "" {
		return nil, apperror.BadRequest("Faltan campos obligatorios: usuarioId, items")
	}
	if len(in.Items) == 0 {
		return nil, apperror.BadRequest("El pedido debe contener al menos un item")
	}

	var total float64
	items := make([]model.OrderItem, len(in.Items))
	for i, it := range in.Items {
		total += it.Precio * float64(it.Cantidad)
		items[i] = model.OrderItem{
			Nombre:     it.Nombre,
			Cantidad:   it.Cantidad,
			Precio:     it.Precio,
			MenuItemID: it.MenuItemID,
		}
	}

	order := &model.Order{
		Codigo:    newOrderCode(),
		Total:     total,
		UsuarioID: in.UsuarioID,
		Items:     items,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetHistorial returns all orders with items, newest first, optionally
// filtered by user.
func (s *OrderService) GetHistorial(ctx context.Context, usuarioID string) ([]model.Order, error) {
	return s.orders.List(ctx, usuarioID)
}

// GetPedidoByCodigo returns one order with items and owning user.
func (s *OrderService) GetPedidoByCodigo(ctx context.Context, codigo string) (*model.Order, error) {
	order, err := s.orders.GetByCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, apperror.NotFound("Pedido no encontrado")
		}
		return nil, err
	}
	return order, nil
}

// EnviarNotificacion is a stub: it validates that the order exists and
// returns a placeholder acknowledgment. TODO: integrate the push notification
// service.
func (s *OrderService) EnviarNotificacion(ctx context.Context, codigo string) (*OrderAck, error) {
	order, err := s.GetPedidoByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return &OrderAck{Message: "Notificación enviada", Pedido: order}, nil
}

// GenerarBoleta is a stub: it validates that the order exists and returns a
// placeholder acknowledgment. TODO: generate the receipt PDF and send it by
// email.
func (s *OrderService) GenerarBoleta(ctx context.Context, codigo string) (*OrderAck, error) {
	order, err := s.GetPedidoByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return &OrderAck{Message: "Boleta generada y enviada", Pedido: order}, nil
}

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderCode builds PED-<epoch-millis>-<9 random uppercase base36 chars>.
// Uniqueness is probabilistic here; the DB unique index on codigo turns an
// actual collision into an error instead of a silent duplicate.
func newOrderCode() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36Upper[rand.Intn(len(base36Upper))]
	}
	return fmt.Sprintf("PED-%d-%s", time.Now().UnixMilli(), suffix)
}
