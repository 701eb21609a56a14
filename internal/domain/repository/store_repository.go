package repository

import "github.com/jhoicas/pos-caja-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia de tiendas.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id int) (*entity.Store, error)
	Update(store *entity.Store) error
	Delete(id int) error
	List() ([]*entity.Store, error)
}
