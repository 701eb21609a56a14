package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación en memoria de StoreRepository.
type StoreRepo struct {
	mu     sync.RWMutex
	rows   map[int]entity.Store
	nextID int
}

// NewStoreRepository construye el adaptador en memoria de tiendas.
func NewStoreRepository() *StoreRepo {
	return &StoreRepo{rows: make(map[int]entity.Store), nextID: 1}
}

// Create persiste una tienda nueva y le asigna ID secuencial.
func (r *StoreRepo) Create(store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	store.ID = r.nextID
	r.nextID++
	store.CreatedAt = now
	store.UpdatedAt = now
	r.rows[store.ID] = *store
	return nil
}

// GetByID obtiene una copia de la tienda, o nil si no existe.
func (r *StoreRepo) GetByID(id int) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Update reemplaza los campos editables de la tienda.
func (r *StoreRepo) Update(store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rows[store.ID]
	if !ok {
		return domain.ErrNotFound
	}
	store.CreatedAt = current.CreatedAt
	store.UpdatedAt = time.Now()
	r.rows[store.ID] = *store
	return nil
}

// Delete elimina la tienda.
func (r *StoreRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// List devuelve todas las tiendas ordenadas por ID.
func (r *StoreRepo) List() ([]*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stores := make([]*entity.Store, 0, len(r.rows))
	for _, s := range r.rows {
		st := s
		stores = append(stores, &st)
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].ID < stores[j].ID })
	return stores, nil
}
