package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/jpariona/ulima-campus-api/internal/model"
)

// ErrUserNotFound is returned when a user cannot be found in the DB.
var ErrUserNotFound = errors.New("user not found")

// UserRepo encapsulates all database queries related to users.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// List returns all users ordered by name.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const q = `SELECT id, nombre, email, rol, created_at
	           FROM usuarios ORDER BY nombre`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.Rol, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a user by id. Returns ErrUserNotFound if no row matches.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT id, nombre, email, rol, created_at FROM usuarios WHERE id = ?`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Nombre, &u.Email, &u.Rol, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetFirst returns an arbitrary user (first row by storage order). It backs
// the placeholder "current user" endpoint; ErrUserNotFound means the user set
// is empty.
func (r *UserRepo) GetFirst(ctx context.Context) (*model.User, error) {
	const q = `SELECT id, nombre, email, rol, created_at FROM usuarios LIMIT 1`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q).Scan(&u.ID, &u.Nombre, &u.Email, &u.Rol, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether a user with the given email is already
// registered.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	const q = `SELECT 1 FROM usuarios WHERE email = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create inserts a new user. The ID is generated here and the creation
// timestamp is read back so callers receive a fully populated record.
// ErrDuplicate is returned when the email is already taken.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.ID = uuid.NewString()
	const qInsert = `INSERT INTO usuarios (id, nombre, email, rol) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, qInsert, u.ID, u.Nombre, u.Email, u.Rol); err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicate
		}
		return err
	}
	const qSelect = `SELECT created_at FROM usuarios WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, u.ID).Scan(&u.CreatedAt)
}

// UpdateRol changes a user's role and returns the updated record.
// ErrUserNotFound is returned when no row is affected.
func (r *UserRepo) UpdateRol(ctx context.Context, id string, rol model.Role) (*model.User, error) {
	const q = `UPDATE usuarios SET rol = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, rol, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is 0 both when the row is absent and when the role is
		// unchanged, so distinguish with a lookup.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}
