package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// itemRow envuelve el artículo con su propio mutex: el stock de cada artículo
// es una celda independiente, dos ventas sobre artículos distintos no compiten.
type itemRow struct {
	mu   sync.Mutex
	item entity.Item
}

// ItemRepo implementación en memoria de ItemRepository.
// El mutex del repo protege los mapas y el secuencial; el mutex de cada fila
// serializa las mutaciones de stock de ese artículo.
type ItemRepo struct {
	mu     sync.RWMutex
	rows   map[int]*itemRow
	byCode map[string]int
	nextID int
}

// NewItemRepository construye el adaptador en memoria de artículos.
func NewItemRepository() *ItemRepo {
	return &ItemRepo{rows: make(map[int]*itemRow), byCode: make(map[string]int), nextID: 1}
}

// Create persiste un artículo nuevo y le asigna ID secuencial.
func (r *ItemRepo) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.Code != "" {
		if _, ok := r.byCode[item.Code]; ok {
			return domain.ErrDuplicate
		}
	}
	now := time.Now()
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = now
	item.UpdatedAt = now
	r.rows[item.ID] = &itemRow{item: *item}
	if item.Code != "" {
		r.byCode[item.Code] = item.ID
	}
	return nil
}

// GetByID obtiene una copia del artículo, o nil si no existe.
func (r *ItemRepo) GetByID(id int) (*entity.Item, error) {
	r.mu.RLock()
	row, ok := r.rows[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	it := row.item
	return &it, nil
}

// GetByCode obtiene un artículo por su código, o nil si no existe.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	r.mu.RLock()
	id, ok := r.byCode[code]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

// Update reemplaza los campos editables del artículo. El stock se escribe tal
// cual llega; la validación de rango ocurre en el caso de uso.
func (r *ItemRepo) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	if item.Code != row.item.Code {
		if item.Code != "" {
			if otherID, dup := r.byCode[item.Code]; dup && otherID != item.ID {
				return domain.ErrDuplicate
			}
		}
		delete(r.byCode, row.item.Code)
		if item.Code != "" {
			r.byCode[item.Code] = item.ID
		}
	}
	item.CreatedAt = row.item.CreatedAt
	item.UpdatedAt = time.Now()
	row.item = *item
	return nil
}

// Delete elimina el artículo.
func (r *ItemRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byCode, row.item.Code)
	delete(r.rows, id)
	return nil
}

// List devuelve todos los artículos ordenados por ID.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]*entity.Item, 0, len(r.rows))
	for _, row := range r.rows {
		row.mu.Lock()
		it := row.item
		row.mu.Unlock()
		items = append(items, &it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// DecrementStock ejecuta el check-and-set atómico por artículo: bajo el mutex
// de la fila lee el stock, verifica suficiencia y escribe el nuevo valor.
func (r *ItemRepo) DecrementStock(id, quantity int) (*entity.Item, error) {
	r.mu.RLock()
	row, ok := r.rows[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	if quantity > row.item.Stock {
		return nil, domain.ErrInsufficientStock
	}
	row.item.Stock -= quantity
	row.item.UpdatedAt = time.Now()
	it := row.item
	return &it, nil
}

// IncrementStock devuelve unidades al stock (compensación de un decremento).
func (r *ItemRepo) IncrementStock(id, quantity int) error {
	r.mu.RLock()
	row, ok := r.rows[id]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrNotFound
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	row.item.Stock += quantity
	row.item.UpdatedAt = time.Now()
	return nil
}
