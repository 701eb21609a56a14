package entity

import "time"

// Setting es un parámetro de configuración de la tienda (clave/valor).
type Setting struct {
	ID          int
	Key         string
	Value       string
	Type        string // string, number
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
