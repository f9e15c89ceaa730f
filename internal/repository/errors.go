// Package repository contains data access logic separated from HTTP handlers
// and services. Each entity gets its own repo type holding the shared *sql.DB
// gateway. Sentinel errors declared next to each repo let the service layer
// translate storage outcomes into typed application errors without parsing
// driver messages itself.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when an insert violates a UNIQUE constraint.
// Uniqueness of emails, section codes, order codes and membership pairs is
// backed by DB constraints, so a concurrent writer that slips past an
// existence pre-check still surfaces here instead of as a raw driver error.
var ErrDuplicate = errors.New("duplicate entry")

// isDuplicateEntry detects MySQL error 1062 (ER_DUP_ENTRY).
func isDuplicateEntry(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Error 1062")
}
