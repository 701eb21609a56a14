package dto

import "time"

// UpdateSettingRequest cuerpo de actualización de un parámetro.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// SettingResponse representación JSON de un parámetro de configuración.
type SettingResponse struct {
	ID          int       `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
