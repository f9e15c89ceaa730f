package model

import "time"

// Review represents a row in the `resenas` table. Comments are created
// atomically with the review and have no independent lifecycle.
type Review struct {
	ID           string    `json:"id"`                // resenas.id
	ProductID    string    `json:"productId"`         // resenas.product_id (menu item)
	UsuarioID    string    `json:"usuarioId"`         // resenas.usuario_id
	Calificacion int       `json:"calificacion"`      // resenas.calificacion
	CreatedAt    time.Time `json:"createdAt"`         // resenas.created_at
	Comentarios  []Comment `json:"comentarios"`       // comentarios rows
	Usuario      *UserRef  `json:"usuario,omitempty"` // author projection, list-by-product only
}

// Comment is a review sub-entity in the `comentarios` table.
type Comment struct {
	ID           string `json:"id"`           // comentarios.id
	Comentario   string `json:"comentario"`   // comentarios.comentario
	Calificacion int    `json:"calificacion"` // comentarios.calificacion
	ResenaID     string `json:"resenaId"`     // comentarios.resena_id
}

// ProductReviews is the response shape of the list-by-product operation:
// the live arithmetic mean of all ratings plus the reviews themselves.
// Calificacion is 0 when the product has no reviews.
type ProductReviews struct {
	ProductID    string   `json:"productId"`
	Calificacion float64  `json:"calificacion"`
	Resenas      []Review `json:"resenas"`
}
