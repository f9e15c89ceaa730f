package model

// MenuItem represents a purchasable dish in the `menu_items` table.
//
// Fields:
//  ID          – primary key (uuid).
//  Nombre      – display name.
//  Descripcion – free-text description.
//  ImagenURL   – reference to the dish image.
//  Precio      – unit price in soles.
//  Resenas     – reviews with their comments; populated only by the detail
//                lookup, nil on plain listings.
type MenuItem struct {
	ID          string   `json:"id"`                // menu_items.id
	Nombre      string   `json:"nombre"`            // menu_items.nombre
	Descripcion string   `json:"descripcion"`       // menu_items.descripcion
	ImagenURL   string   `json:"imagenUrl"`         // menu_items.imagen_url
	Precio      float64  `json:"precio"`            // menu_items.precio (DECIMAL(10,2))
	Resenas     []Review `json:"resenas,omitempty"` // detail endpoint only
}
