package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jpariona/ulima-campus-api/internal/model"
)

// MaterialRepo encapsulates all database queries related to shared section
// materials.
type MaterialRepo struct {
	db *sql.DB
}

// NewMaterialRepo constructs a MaterialRepo with the provided DB handle.
func NewMaterialRepo(db *sql.DB) *MaterialRepo {
	return &MaterialRepo{db: db}
}

// ListBySection returns all materials of a section newest first.
func (r *MaterialRepo) ListBySection(ctx context.Context, seccionID string) ([]model.Material, error) {
	const q = `SELECT id, nombre, tipo, url, autor_id, autor_nombre, seccion_id, fecha_subida
	           FROM materiales WHERE seccion_id = ? ORDER BY fecha_subida DESC`
	rows, err := r.db.QueryContext(ctx, q, seccionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Material{}
	for rows.Next() {
		var m model.Material
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Tipo, &m.URL, &m.AutorID, &m.AutorNombre, &m.SeccionID, &m.FechaSubida); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a material and reads back the stored upload timestamp.
func (r *MaterialRepo) Create(ctx context.Context, m *model.Material) error {
	m.ID = uuid.NewString()
	const q = `INSERT INTO materiales (id, nombre, tipo, url, autor_id, autor_nombre, seccion_id)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, m.ID, m.Nombre, m.Tipo, m.URL, m.AutorID, m.AutorNombre, m.SeccionID); err != nil {
		return err
	}
	const qSelect = `SELECT fecha_subida FROM materiales WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, m.ID).Scan(&m.FechaSubida)
}
