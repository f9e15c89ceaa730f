package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/jpariona/ulima-campus-api/internal/model"
)

// ErrReviewNotFound is returned when a review cannot be found in the DB.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepo encapsulates all database queries related to reviews and their
// comments. Comments never exist outside a review, so they have no repo of
// their own.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo constructs a ReviewRepo with the provided DB handle.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// ListByProduct returns all reviews for a product, newest first, each with
// its comments and the minimal author projection.
func (r *ReviewRepo) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	const q = `SELECT r.id, r.product_id, r.usuario_id, r.calificacion, r.created_at, u.id, u.nombre
	           FROM resenas r
	           JOIN usuarios u ON u.id = r.usuario_id
	           WHERE r.product_id = ?
	           ORDER BY r.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		var rv model.Review
		var author model.UserRef
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UsuarioID, &rv.Calificacion, &rv.CreatedAt,
			&author.ID, &author.Nombre); err != nil {
			return nil, err
		}
		rv.Usuario = &author
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		comments, err := listComments(ctx, r.db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Comentarios = comments
	}
	return out, nil
}

// GetByID fetches one review with its comments. Returns ErrReviewNotFound if
// absent.
func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*model.Review, error) {
	const q = `SELECT id, product_id, usuario_id, calificacion, created_at FROM resenas WHERE id = ?`
	var rv model.Review
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&rv.ID, &rv.ProductID, &rv.UsuarioID, &rv.Calificacion, &rv.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	comments, err := listComments(ctx, r.db, rv.ID)
	if err != nil {
		return nil, err
	}
	rv.Comentarios = comments
	return &rv, nil
}

// Create persists a review and its comments as one unit. Partial application
// (review row without its comments) is never acceptable, so both run inside a
// single transaction.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
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

	rv.ID = uuid.NewString()
	const qReview = `INSERT INTO resenas (id, product_id, usuario_id, calificacion) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, qReview, rv.ID, rv.ProductID, rv.UsuarioID, rv.Calificacion); err != nil {
		return err
	}

	const qComment = `INSERT INTO comentarios (id, resena_id, comentario, calificacion) VALUES (?, ?, ?, ?)`
	for i := range rv.Comentarios {
		c := &rv.Comentarios[i]
		c.ID = uuid.NewString()
		c.ResenaID = rv.ID
		if _, err := tx.ExecContext(ctx, qComment, c.ID, c.ResenaID, c.Comentario, c.Calificacion); err != nil {
			return err
		}
	}

	const qSelect = `SELECT created_at FROM resenas WHERE id = ?`
	if err := tx.QueryRowContext(ctx, qSelect, rv.ID).Scan(&rv.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// listComments loads the comments of one review. Shared with MenuRepo, which
// embeds reviews in the item detail response.
func listComments(ctx context.Context, db *sql.DB, resenaID string) ([]model.Comment, error) {
	const q = `SELECT id, comentario, calificacion, resena_id FROM comentarios WHERE resena_id = ?`
	rows, err := db.QueryContext(ctx, q, resenaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Comentario, &c.Calificacion, &c.ResenaID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
