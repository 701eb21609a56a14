package dto

import "time"

// SaveStoreRequest cuerpo de creación/actualización de tienda.
type SaveStoreRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// StoreResponse representación JSON de una tienda.
type StoreResponse struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
