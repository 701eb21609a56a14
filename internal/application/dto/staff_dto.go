package dto

import "time"

// SaveStaffRequest cuerpo de creación/actualización de empleado.
// Password llega en claro y se persiste solo como hash bcrypt.
type SaveStaffRequest struct {
	Name     string `json:"name"`
	StoreID  int    `json:"storeId"`
	Password string `json:"password"`
}

// StaffResponse representación JSON de un empleado. Nunca incluye credenciales.
type StaffResponse struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	StoreID   int       `json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
