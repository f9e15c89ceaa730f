// Package router defines how HTTP routes are registered for the API. Route
// shapes mirror the mobile client's expectations; there is no versioning and
// no authentication on any endpoint.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jpariona/ulima-campus-api/internal/handler"
	"github.com/jpariona/ulima-campus-api/internal/metrics"
)

// Handlers bundles the per-module handlers the router wires up.
type Handlers struct {
	Menu      *handler.MenuHandler
	Orders    *handler.OrderHandler
	Reviews   *handler.ReviewHandler
	Users     *handler.UserHandler
	Classroom *handler.ClassroomHandler
}

// Register maps every route onto the provided Echo instance.
func Register(e *echo.Echo, h Handlers) {
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	menu := e.Group("/api/menu")
	menu.GET("", h.Menu.GetMenuItems)
	menu.GET("/:id", h.Menu.GetMenuItemDetail)

	pedidos := e.Group("/api/pedidos")
	pedidos.POST("", h.Orders.CreatePedido)
	pedidos.GET("", h.Orders.GetHistorial)
	pedidos.GET("/:codigo", h.Orders.GetPedidoByCodigo)
	pedidos.POST("/:codigo/notificacion", h.Orders.EnviarNotificacion)
	pedidos.POST("/:codigo/boleta", h.Orders.GenerarBoleta)

	resenas := e.Group("/api/resenas")
	resenas.POST("", h.Reviews.CreateResena)
	// The static /item segment must be registered before the :productId
	// parameter route.
	resenas.GET("/item/:id", h.Reviews.GetResenaItem)
	resenas.GET("/:productId", h.Reviews.GetResenasByProduct)

	usuarios := e.Group("/api/usuarios")
	usuarios.GET("", h.Users.GetUsuarios)
	usuarios.GET("/actual", h.Users.GetUsuarioActual)
	usuarios.GET("/:id", h.Users.GetUsuarioByID)
	usuarios.POST("", h.Users.CreateUsuario)
	usuarios.PATCH("/:id/rol", h.Users.UpdateRol)

	aula := e.Group("/api/aula-virtual")
	aula.GET("/usuarios/:usuarioId/secciones", h.Classroom.GetSeccionesUsuario)
	aula.GET("/secciones/:seccionId", h.Classroom.GetSeccionDetail)
	aula.POST("/secciones", h.Classroom.CreateSeccion)
	aula.POST("/secciones/:seccionId/usuarios/:usuarioId", h.Classroom.AsignarUsuarioSeccion)
	aula.GET("/secciones/:seccionId/mensajes", h.Classroom.GetMensajes)
	aula.POST("/secciones/:seccionId/mensajes", h.Classroom.EnviarMensaje)
	aula.GET("/secciones/:seccionId/materiales", h.Classroom.GetMateriales)
	aula.POST("/secciones/:seccionId/materiales", h.Classroom.SubirMaterial)
	aula.GET("/secciones/:seccionId/eventos", h.Classroom.GetEventos)
	aula.POST("/secciones/:seccionId/eventos", h.Classroom.CrearEvento)
}
