package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jpariona/ulima-campus-api/internal/model"
)

// EventRepo encapsulates all database queries related to section calendar
// events.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the provided DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// ListBySection returns all events of a section ordered by event date
// ascending.
func (r *EventRepo) ListBySection(ctx context.Context, seccionID string) ([]model.Event, error) {
	const q = `SELECT id, titulo, descripcion, fecha, tipo, autor_id, seccion_id
	           FROM eventos WHERE seccion_id = ? ORDER BY fecha ASC`
	rows, err := r.db.QueryContext(ctx, q, seccionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Titulo, &e.Descripcion, &e.Fecha, &e.Tipo, &e.AutorID, &e.SeccionID); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a calendar event.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	e.ID = uuid.NewString()
	const q = `INSERT INTO eventos (id, titulo, descripcion, fecha, tipo, autor_id, seccion_id)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, e.ID, e.Titulo, e.Descripcion, e.Fecha, e.Tipo, e.AutorID, e.SeccionID)
	return err
}
