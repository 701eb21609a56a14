package entity

import "time"

// Store representa un punto de venta.
type Store struct {
	ID        int
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
