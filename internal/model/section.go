package model

// Section groups users, messages, materials and events for one course
// section. ProfesorNombre and DelegadoNombre are denormalized display
// strings, not user references; they are stored as supplied and never kept in
// sync with later user renames.
type Section struct {
	ID             string  `json:"id"`             // secciones.id
	Nombre         string  `json:"nombre"`         // secciones.nombre
	Codigo         string  `json:"codigo"`         // secciones.codigo (unique)
	CursoNombre    string  `json:"cursoNombre"`    // secciones.curso_nombre
	ProfesorNombre string  `json:"profesorNombre"` // secciones.profesor_nombre
	DelegadoNombre *string `json:"delegadoNombre"` // secciones.delegado_nombre (nullable)
}

// Membership is the `usuario_secciones` join row linking a user to a section.
// At most one row may exist per (usuario, seccion) pair.
type Membership struct {
	ID        string `json:"id"`        // usuario_secciones.id
	UsuarioID string `json:"usuarioId"` // usuario_secciones.usuario_id
	SeccionID string `json:"seccionId"` // usuario_secciones.seccion_id
}
