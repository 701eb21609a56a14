package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación en memoria de StaffRepository.
type StaffRepo struct {
	mu     sync.RWMutex
	rows   map[int]entity.Staff
	nextID int
}

// NewStaffRepository construye el adaptador en memoria de empleados.
func NewStaffRepository() *StaffRepo {
	return &StaffRepo{rows: make(map[int]entity.Staff), nextID: 1}
}

// Create persiste un empleado nuevo y le asigna ID secuencial.
func (r *StaffRepo) Create(staff *entity.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	staff.ID = r.nextID
	r.nextID++
	staff.CreatedAt = now
	staff.UpdatedAt = now
	r.rows[staff.ID] = *staff
	return nil
}

// GetByID obtiene una copia del empleado, o nil si no existe.
func (r *StaffRepo) GetByID(id int) (*entity.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Update reemplaza los campos editables del empleado.
func (r *StaffRepo) Update(staff *entity.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rows[staff.ID]
	if !ok {
		return domain.ErrNotFound
	}
	staff.CreatedAt = current.CreatedAt
	staff.UpdatedAt = time.Now()
	r.rows[staff.ID] = *staff
	return nil
}

// Delete elimina el empleado.
func (r *StaffRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// List devuelve todos los empleados ordenados por ID.
func (r *StaffRepo) List() ([]*entity.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	staff := make([]*entity.Staff, 0, len(r.rows))
	for _, s := range r.rows {
		st := s
		staff = append(staff, &st)
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].ID < staff[j].ID })
	return staff, nil
}
