package entity

import "time"

// Staff representa un empleado asignado a una tienda.
// PasswordHash guarda el hash bcrypt; la contraseña en claro nunca se persiste.
type Staff struct {
	ID           int
	Code         string
	Name         string
	StoreID      int
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
