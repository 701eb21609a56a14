package repository

import "github.com/jhoicas/pos-caja-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia de artículos.
// DecrementStock es la celda atómica por artículo: lee el stock actual,
// verifica suficiencia y escribe el nuevo valor como una sola operación
// serializada por artículo. Retorna domain.ErrNotFound si el artículo no
// existe y domain.ErrInsufficientStock si quantity > stock actual.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id int) error
	List() ([]*entity.Item, error)
	DecrementStock(id, quantity int) (*entity.Item, error)
	// IncrementStock revierte un decremento previo (compensación en rollback).
	IncrementStock(id, quantity int) error
}
