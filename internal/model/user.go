package model

import (
	"strings"
	"time"
)

// Role enumerates the values accepted by the `usuarios.rol` column. The set
// is closed; anything else is rejected at the boundary before touching the
// database.
type Role string

const (
	RoleAlumno   Role = "alumno"
	RoleProfesor Role = "profesor"
	RoleDelegado Role = "delegado"
)

// ParseRole matches input text against the role set, case-insensitively, and
// returns the canonical value. The second return reports whether the input is
// a member of the set.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAlumno:
		return RoleAlumno, true
	case RoleProfesor:
		return RoleProfesor, true
	case RoleDelegado:
		return RoleDelegado, true
	}
	return "", false
}

// User represents a row in the `usuarios` table. The JSON tags follow the
// wire format consumed by the mobile client, which is why they are Spanish.
type User struct {
	ID        string    `json:"id"`        // usuarios.id (uuid)
	Nombre    string    `json:"nombre"`    // usuarios.nombre
	Email     string    `json:"email"`     // usuarios.email (unique)
	Rol       Role      `json:"rol"`       // usuarios.rol
	CreatedAt time.Time `json:"createdAt"` // usuarios.created_at
}

// UserRef is the minimal author projection embedded in review listings.
type UserRef struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
