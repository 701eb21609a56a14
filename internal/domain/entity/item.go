package entity

import "time"

// Item representa un artículo del inventario de la tienda.
// Price y Stock son enteros (unidad mínima de moneda / unidades contables);
// ambos nunca son negativos.
type Item struct {
	ID          int
	Code        string // código de barras o código interno, único
	Name        string
	Price       int
	Stock       int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
