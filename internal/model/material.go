package model

import (
	"strings"
	"time"
)

// MaterialType enumerates the values of `materiales.tipo`.
type MaterialType string

const (
	MaterialPDF       MaterialType = "pdf"
	MaterialVideo     MaterialType = "video"
	MaterialImagen    MaterialType = "imagen"
	MaterialDocumento MaterialType = "documento"
	MaterialOtro      MaterialType = "otro"
)

// MaterialTypes lists the valid values in the order they are reported in
// validation error messages.
var MaterialTypes = []MaterialType{
	MaterialPDF, MaterialVideo, MaterialImagen, MaterialDocumento, MaterialOtro,
}

// ParseMaterialType matches input text case-insensitively against the closed
// set and returns the canonical value.
func ParseMaterialType(s string) (MaterialType, bool) {
	t := MaterialType(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range MaterialTypes {
		if t == v {
			return v, true
		}
	}
	return "", false
}

// Material is a typed file reference shared inside a section.
type Material struct {
	ID          string       `json:"id"`          // materiales.id
	Nombre      string       `json:"nombre"`      // materiales.nombre
	Tipo        MaterialType `json:"tipo"`        // materiales.tipo
	URL         string       `json:"url"`         // materiales.url
	AutorID     string       `json:"autorId"`     // materiales.autor_id
	AutorNombre string       `json:"autorNombre"` // materiales.autor_nombre (denormalized)
	SeccionID   string       `json:"seccionId"`   // materiales.seccion_id
	FechaSubida time.Time    `json:"fechaSubida"` // materiales.fecha_subida
}
