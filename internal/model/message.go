package model

import "time"

// Message is a chat message or announcement inside a section. AutorNombre is
// a denormalized copy of the author's display name at posting time.
type Message struct {
	ID          string    `json:"id"`          // mensajes.id
	Contenido   string    `json:"contenido"`   // mensajes.contenido
	AutorID     string    `json:"autorId"`     // mensajes.autor_id
	AutorNombre string    `json:"autorNombre"` // mensajes.autor_nombre
	SeccionID   string    `json:"seccionId"`   // mensajes.seccion_id
	EsAnuncio   bool      `json:"esAnuncio"`   // mensajes.es_anuncio
	Fecha       time.Time `json:"fecha"`       // mensajes.fecha
}
