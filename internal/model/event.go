package model

import (
	"strings"
	"time"
)

// EventType enumerates the values of `eventos.tipo`.
type EventType string

const (
	EventEntrega    EventType = "entrega"
	EventEvaluacion EventType = "evaluacion"
	EventEvento     EventType = "evento"
)

// EventTypes lists the valid values in the order they are reported in
// validation error messages.
var EventTypes = []EventType{EventEntrega, EventEvaluacion, EventEvento}

// ParseEventType matches input text case-insensitively against the closed set
// and returns the canonical value.
func ParseEventType(s string) (EventType, bool) {
	t := EventType(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range EventTypes {
		if t == v {
			return v, true
		}
	}
	return "", false
}

// Event is a calendar entry inside a section.
type Event struct {
	ID          string    `json:"id"`          // eventos.id
	Titulo      string    `json:"titulo"`      // eventos.titulo
	Descripcion string    `json:"descripcion"` // eventos.descripcion
	Fecha       time.Time `json:"fecha"`       // eventos.fecha
	Tipo        EventType `json:"tipo"`        // eventos.tipo
	AutorID     string    `json:"autorId"`     // eventos.autor_id
	SeccionID   string    `json:"seccionId"`   // eventos.seccion_id
}
