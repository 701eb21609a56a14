package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria del libro de ventas (append-only).
type SaleRepo struct {
	mu         sync.RWMutex
	rows       map[int]entity.Sale
	nextID     int
	nextLineID int
}

// NewSaleRepository construye el adaptador en memoria de ventas.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{rows: make(map[int]entity.Sale), nextID: 1, nextLineID: 1}
}

// Create registra la venta completa bajo el lock del repo: asigna ID a la
// venta y a cada línea y la guarda como unidad. Un lector nunca observa una
// venta a medio escribir.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	sale.ID = r.nextID
	r.nextID++
	if sale.SaleAt.IsZero() {
		sale.SaleAt = now
	}
	sale.CreatedAt = now
	sale.UpdatedAt = now
	for i := range sale.Items {
		sale.Items[i].ID = r.nextLineID
		r.nextLineID++
		sale.Items[i].SaleID = sale.ID
	}
	stored := *sale
	stored.Items = append([]entity.SaleLineItem(nil), sale.Items...)
	r.rows[sale.ID] = stored
	return nil
}

// GetByID obtiene una copia de la venta con sus líneas, o nil si no existe.
func (r *SaleRepo) GetByID(id int) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := s
	out.Items = append([]entity.SaleLineItem(nil), s.Items...)
	return &out, nil
}

// List devuelve todas las ventas ordenadas por ID.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sales := make([]*entity.Sale, 0, len(r.rows))
	for _, s := range r.rows {
		out := s
		out.Items = append([]entity.SaleLineItem(nil), s.Items...)
		sales = append(sales, &out)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].ID < sales[j].ID })
	return sales, nil
}
