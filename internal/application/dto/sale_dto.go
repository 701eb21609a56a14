package dto

import "time"

// CreateSaleRequest cuerpo de creación de venta: referencias por ID y líneas
// en el orden en que pasaron por la caja.
type CreateSaleRequest struct {
	StoreID    int                   `json:"storeId"`
	StaffID    int                   `json:"staffId"`
	TotalPrice int                   `json:"totalPrice"`
	Deposit    int                   `json:"deposit"`
	Items      []SaleLineItemRequest `json:"items"`
}

// SaleLineItemRequest una línea de la venta. Price 0 congela el precio actual
// del artículo.
type SaleLineItemRequest struct {
	ItemID   int `json:"itemId"`
	Price    int `json:"price"`
	Quantity int `json:"quantity"`
}

// SaleResponse representación JSON de una venta con sus líneas embebidas.
type SaleResponse struct {
	ID         int                    `json:"id"`
	StoreID    int                    `json:"storeId"`
	StaffID    int                    `json:"staffId"`
	TotalPrice int                    `json:"totalPrice"`
	Deposit    int                    `json:"deposit"`
	SaleAt     time.Time              `json:"saleAt"`
	Items      []SaleLineItemResponse `json:"items"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// SaleLineItemResponse línea persistida de una venta.
type SaleLineItemResponse struct {
	ID       int `json:"id"`
	ItemID   int `json:"itemId"`
	Price    int `json:"price"`
	Quantity int `json:"quantity"`
}

// SalesReportResponse resumen del reporte de ventas.
type SalesReportResponse struct {
	Sales       []SaleResponse `json:"sales"`
	TotalSales  int            `json:"totalSales"`
	TotalAmount int            `json:"totalAmount"`
}
