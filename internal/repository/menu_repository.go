package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jpariona/ulima-campus-api/internal/model"
)

// ErrMenuItemNotFound is returned when a menu item cannot be found in the DB.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuRepo encapsulates all database queries related to menu items.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo constructs a MenuRepo with the provided DB handle.
func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

// List returns all menu items ordered by name ascending. No pagination.
func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	const q = `SELECT id, nombre, descripcion, imagen_url, precio
	           FROM menu_items ORDER BY nombre`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Descripcion, &m.ImagenURL, &m.Precio); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Exists reports whether a menu item with the given id is present. It backs
// the product existence check performed before creating a review.
func (r *MenuRepo) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT 1 FROM menu_items WHERE id = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetDetail fetches one item together with its reviews and each review's
// comments. Returns ErrMenuItemNotFound if the id does not resolve.
func (r *MenuRepo) GetDetail(ctx context.Context, id string) (*model.MenuItem, error) {
	const q = `SELECT id, nombre, descripcion, imagen_url, precio FROM menu_items WHERE id = ?`
	var m model.MenuItem
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Nombre, &m.Descripcion, &m.ImagenURL, &m.Precio); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	const qReviews = `SELECT id, product_id, usuario_id, calificacion, created_at
	                  FROM resenas WHERE product_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, qReviews, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m.Resenas = []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UsuarioID, &rv.Calificacion, &rv.CreatedAt); err != nil {
			return nil, err
		}
		m.Resenas = append(m.Resenas, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range m.Resenas {
		comments, err := listComments(ctx, r.db, m.Resenas[i].ID)
		if err != nil {
			return nil, err
		}
		m.Resenas[i].Comentarios = comments
	}
	return &m, nil
}
