package entity

import "time"

// Sale representa una transacción de venta ya confirmada.
// Es un agregado inmutable: una vez registrada no se edita ni se revierte.
// TotalPrice y Deposit se guardan tal como los envió el cliente (el motor
// registra la transacción, no la recalcula).
type Sale struct {
	ID         int
	StoreID    int
	StaffID    int
	TotalPrice int
	Deposit    int
	SaleAt     time.Time
	Items      []SaleLineItem // en orden de inserción
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SaleLineItem es una línea de la venta: referencia al artículo por ID,
// precio unitario congelado al momento de la venta y cantidad (> 0).
type SaleLineItem struct {
	ID       int
	SaleID   int
	ItemID   int
	Price    int
	Quantity int
}
