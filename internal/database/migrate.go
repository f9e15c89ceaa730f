package database

import (
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/jpariona/ulima-campus-api/internal/database/migrations"
)

// Migrate applies all pending goose migrations from the embedded filesystem.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("mysql"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
