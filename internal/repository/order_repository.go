package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jpariona/ulima-campus-api/internal/model"
)

// ErrOrderNotFound is returned when an order cannot be found in the DB.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepo encapsulates all database queries related to orders and their
// line items. Line items are written once with the order and never touched
// again.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo constructs an OrderRepo with the provided DB handle.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persists the order and all its line items as one unit inside a
// transaction, then reads the storage-assigned creation timestamp back.
// ErrDuplicate is returned on an order code collision.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	o.ID = uuid.NewString()
	const qOrder = `INSERT INTO pedidos (id, codigo, total, usuario_id) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, qOrder, o.ID, o.Codigo, o.Total, o.UsuarioID); err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicate
		}
		return err
	}

	const qItem = `INSERT INTO pedido_items (id, pedido_id, nombre, cantidad, precio, menu_item_id)
	               VALUES (?, ?, ?, ?, ?, ?)`
	for i := range o.Items {
		it := &o.Items[i]
		it.ID = uuid.NewString()
		it.PedidoID = o.ID
		if _, err := tx.ExecContext(ctx, qItem, it.ID, it.PedidoID, it.Nombre, it.Cantidad, it.Precio, it.MenuItemID); err != nil {
			return err
		}
	}

	const qSelect = `SELECT fecha FROM pedidos WHERE id = ?`
	if err := tx.QueryRowContext(ctx, qSelect, o.ID).Scan(&o.Fecha); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// List returns orders with their items, newest first. An empty usuarioID
// returns the full history; otherwise only that user's orders.
func (r *OrderRepo) List(ctx context.Context, usuarioID string) ([]model.Order, error) {
	q := `SELECT id, codigo, total, usuario_id, fecha FROM pedidos`
	args := []any{}
	if usuarioID != "" {
		q += ` WHERE usuario_id = ?`
		args = append(args, usuarioID)
	}
	q += ` ORDER BY fecha DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Codigo, &o.Total, &o.UsuarioID, &o.Fecha); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByCodigo returns one order with its items and owning user. Returns
// ErrOrderNotFound if absent.
func (r *OrderRepo) GetByCodigo(ctx context.Context, codigo string) (*model.Order, error) {
	const q = `SELECT p.id, p.codigo, p.total, p.usuario_id, p.fecha,
	                  u.id, u.nombre, u.email, u.rol, u.created_at
	           FROM pedidos p
	           JOIN usuarios u ON u.id = p.usuario_id
	           WHERE p.codigo = ?`
	var o model.Order
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, codigo).Scan(&o.ID, &o.Codigo, &o.Total, &o.UsuarioID, &o.Fecha,
		&u.ID, &u.Nombre, &u.Email, &u.Rol, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	o.Usuario = &u

	orders := []model.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// attachItems loads the line items of all given orders in a single query.
func (r *OrderRepo) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	idx := make(map[string]*model.Order, len(orders))
	args := make([]any, 0, len(orders))
	for i := range orders {
		orders[i].Items = []model.OrderItem{}
		idx[orders[i].ID] = &orders[i]
		args = append(args, orders[i].ID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")

	q := `SELECT id, pedido_id, nombre, cantidad, precio, menu_item_id
	      FROM pedido_items WHERE pedido_id IN (` + placeholders + `)`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.PedidoID, &it.Nombre, &it.Cantidad, &it.Precio, &it.MenuItemID); err != nil {
			return err
		}
		if o, ok := idx[it.PedidoID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}
