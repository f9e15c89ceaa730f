package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/service"
)

// OrderHandler exposes order creation, history and the stub operations.
type OrderHandler struct {
	svc *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// CreatePedido handles POST /api/pedidos.
func (h *OrderHandler) CreatePedido(c echo.Context) error {
	var in service.CreateOrderInput
	if err := c.Bind(&in); err != nil {
		return apperror.BadRequest("Cuerpo de solicitud inválido")
	}
	order, err := h.svc.CreateOrder(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respondCreated(c, order)
}

// GetHistorial handles GET /api/pedidos with an optional usuarioId query
// filter.
func (h *OrderHandler) GetHistorial(c echo.Context) error {
	orders, err := h.svc.GetHistorial(c.Request().Context(), c.QueryParam("usuarioId"))
	if err != nil {
		return err
	}
	return respondOK(c, orders)
}

// GetPedidoByCodigo handles GET /api/pedidos/:codigo.
func (h *OrderHandler) GetPedidoByCodigo(c echo.Context) error {
	order, err := h.svc.GetPedidoByCodigo(c.Request().Context(), c.Param("codigo"))
	if err != nil {
		return err
	}
	return respondOK(c, order)
}

// EnviarNotificacion handles POST /api/pedidos/:codigo/notificacion.
func (h *OrderHandler) EnviarNotificacion(c echo.Context) error {
	ack, err := h.svc.EnviarNotificacion(c.Request().Context(), c.Param("codigo"))
	if err != nil {
		return err
	}
	return respondOK(c, ack)
}

// GenerarBoleta handles POST /api/pedidos/:codigo/boleta.
func (h *OrderHandler) GenerarBoleta(c echo.Context) error {
	ack, err := h.svc.GenerarBoleta(c.Request().Context(), c.Param("codigo"))
	if err != nil {
		return err
	}
	return respondOK(c, ack)
}
