package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/jpariona/ulima-campus-api/internal/model"
)

// ErrSectionNotFound is returned when a section cannot be found in the DB.
var ErrSectionNotFound = errors.New("section not found")

// SectionRepo encapsulates all database queries related to sections and the
// usuario_secciones membership join. Memberships have no lifecycle beyond
// creation, so they live here instead of in a repo of their own.
type SectionRepo struct {
	db *sql.DB
}

// NewSectionRepo constructs a SectionRepo with the provided DB handle.
func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

// ListByUser joins membership rows to sections and returns the section
// objects themselves, not the join rows.
func (r *SectionRepo) ListByUser(ctx context.Context, usuarioID string) ([]model.Section, error) {
	const q = `SELECT s.id, s.nombre, s.codigo, s.curso_nombre, s.profesor_nombre, s.delegado_nombre
	           FROM usuario_secciones us
	           JOIN secciones s ON s.id = us.seccion_id
	           WHERE us.usuario_id = ?`
	rows, err := r.db.QueryContext(ctx, q, usuarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Codigo, &s.CursoNombre, &s.ProfesorNombre, &s.DelegadoNombre); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a section by id. Returns ErrSectionNotFound if absent.
func (r *SectionRepo) GetByID(ctx context.Context, id string) (*model.Section, error) {
	const q = `SELECT id, nombre, codigo, curso_nombre, profesor_nombre, delegado_nombre
	           FROM secciones WHERE id = ?`
	var s model.Section
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Nombre, &s.Codigo, &s.CursoNombre, &s.ProfesorNombre, &s.DelegadoNombre); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Exists reports whether a section with the given id is present.
func (r *SectionRepo) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT 1 FROM secciones WHERE id = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CodigoExists reports whether a section with the given code is already
// registered.
func (r *SectionRepo) CodigoExists(ctx context.Context, codigo string) (bool, error) {
	const q = `SELECT 1 FROM secciones WHERE codigo = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, q, codigo).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create inserts a new section. ErrDuplicate is returned when its code is
// already taken.
func (r *SectionRepo) Create(ctx context.Context, s *model.Section) error {
	s.ID = uuid.NewString()
	const q = `INSERT INTO secciones (id, nombre, codigo, curso_nombre, profesor_nombre, delegado_nombre)
	           VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, s.ID, s.Nombre, s.Codigo, s.CursoNombre, s.ProfesorNombre, s.DelegadoNombre); err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// MembershipExists reports whether a membership row exists for the exact
// (seccion, usuario) pair.
func (r *SectionRepo) MembershipExists(ctx context.Context, seccionID, usuarioID string) (bool, error) {
	const q = `SELECT 1 FROM usuario_secciones WHERE seccion_id = ? AND usuario_id = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, q, seccionID, usuarioID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateMembership inserts a membership row. The UNIQUE(usuario_id,
// seccion_id) index backs the application-level pre-check: a concurrent
// duplicate insert comes back as ErrDuplicate instead of a second row.
func (r *SectionRepo) CreateMembership(ctx context.Context, m *model.Membership) error {
	m.ID = uuid.NewString()
	const q = `INSERT INTO usuario_secciones (id, usuario_id, seccion_id) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, m.ID, m.UsuarioID, m.SeccionID); err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}
