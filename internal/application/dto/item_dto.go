package dto

import "time"

// SaveItemRequest cuerpo de creación/actualización de artículo.
// Code vacío genera uno automático (ITEM-xxxxxxxx).
type SaveItemRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ItemResponse representación JSON de un artículo.
type ItemResponse struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Stock       int       `json:"stock"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
