package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jpariona/ulima-campus-api/internal/model"
)

// MessageRepo encapsulates all database queries related to section messages.
type MessageRepo struct {
	db *sql.DB
}

// NewMessageRepo constructs a MessageRepo with the provided DB handle.
func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// ListBySection returns all messages of a section oldest first, i.e. chat
// history order.
func (r *MessageRepo) ListBySection(ctx context.Context, seccionID string) ([]model.Message, error) {
	const q = `SELECT id, contenido, autor_id, autor_nombre, seccion_id, es_anuncio, fecha
	           FROM mensajes WHERE seccion_id = ? ORDER BY fecha ASC`
	rows, err := r.db.QueryContext(ctx, q, seccionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Contenido, &m.AutorID, &m.AutorNombre, &m.SeccionID, &m.EsAnuncio, &m.Fecha); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a message and reads back the stored timestamp. The caller
// may have supplied Fecha; a zero value lets the column default apply.
func (r *MessageRepo) Create(ctx context.Context, m *model.Message) error {
	m.ID = uuid.NewString()
	if m.Fecha.IsZero() {
		const q = `INSERT INTO mensajes (id, contenido, autor_id, autor_nombre, seccion_id, es_anuncio)
		           VALUES (?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, q, m.ID, m.Contenido, m.AutorID, m.AutorNombre, m.SeccionID, m.EsAnuncio); err != nil {
			return err
		}
	} else {
		const q = `INSERT INTO mensajes (id, contenido, autor_id, autor_nombre, seccion_id, es_anuncio, fecha)
		           VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, q, m.ID, m.Contenido, m.AutorID, m.AutorNombre, m.SeccionID, m.EsAnuncio, m.Fecha); err != nil {
			return err
		}
	}
	const qSelect = `SELECT fecha FROM mensajes WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, m.ID).Scan(&m.Fecha)
}
