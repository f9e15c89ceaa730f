package model

import "time"

// Order represents a row in the `pedidos` table. The line items are written
// together with the order inside one transaction and are immutable afterwards.
//
// Fields:
//  ID        – primary key (uuid).
//  Codigo    – generated unique code, format PED-<epoch-millis>-<9 base36>.
//  Total     – sum of precio*cantidad over the items, fixed at creation.
//  UsuarioID – owning user.
//  Fecha     – creation timestamp.
//  Items     – line items, always loaded with the order.
//  Usuario   – owning user row; populated only by the lookup-by-code path.
type Order struct {
	ID        string      `json:"id"`                // pedidos.id
	Codigo    string      `json:"codigo"`            // pedidos.codigo (unique)
	Total     float64     `json:"total"`             // pedidos.total (DECIMAL(10,2))
	UsuarioID string      `json:"usuarioId"`         // pedidos.usuario_id
	Fecha     time.Time   `json:"fecha"`             // pedidos.fecha
	Items     []OrderItem `json:"items"`             // pedido_items rows
	Usuario   *User       `json:"usuario,omitempty"` // lookup-by-code only
}

// OrderItem is a line item snapshot: nombre and precio are copied from the
// cart at creation time, not resolved live from menu_items.
type OrderItem struct {
	ID         string  `json:"id"`         // pedido_items.id
	Nombre     string  `json:"nombre"`     // pedido_items.nombre (snapshot)
	Cantidad   int     `json:"cantidad"`   // pedido_items.cantidad
	Precio     float64 `json:"precio"`     // pedido_items.precio (snapshot)
	MenuItemID string  `json:"menuItemId"` // pedido_items.menu_item_id
	PedidoID   string  `json:"pedidoId"`   // pedido_items.pedido_id
}
