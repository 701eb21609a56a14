package repository

import "github.com/jhoicas/pos-caja-api/internal/domain/entity"

// SaleRepository define el puerto del libro de ventas (append-only).
// Create persiste la venta con sus líneas como unidad atómica: asigna el ID
// de la venta y de cada línea, o no persiste nada. No hay update ni delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
}
