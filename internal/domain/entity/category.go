package entity

import "time"

// Category agrupa productos y fija la cadena de propiedad: todo producto es
// visible y modificable solo a través del dueño de su categoría.
type Category struct {
	ID          string
	OwnerID     string    // User dueño; invariante: exactamente uno
	Name        string
	Description string    // opcional
	CreatedAt   time.Time // inmutable, se fija al crear
}
