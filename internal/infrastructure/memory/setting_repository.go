package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación en memoria de SettingRepository.
// Se inicializa con los parámetros por defecto de la tienda.
type SettingRepo struct {
	mu   sync.RWMutex
	rows map[string]entity.Setting
}

// NewSettingRepository construye el adaptador con los parámetros por defecto.
func NewSettingRepository() *SettingRepo {
	now := time.Now()
	defaults := []entity.Setting{
		{ID: 1, Key: "shopName", Value: "POS Shop", Type: "string", Description: "Nombre de la tienda"},
		{ID: 2, Key: "receiptFooter", Value: "¡Gracias por su compra!", Type: "string", Description: "Pie del recibo"},
		{ID: 3, Key: "taxRate", Value: "10", Type: "number", Description: "Tasa de impuesto (%)"},
		{ID: 4, Key: "currency", Value: "JPY", Type: "string", Description: "Código de moneda"},
	}
	rows := make(map[string]entity.Setting, len(defaults))
	for _, s := range defaults {
		s.CreatedAt = now
		s.UpdatedAt = now
		rows[s.Key] = s
	}
	return &SettingRepo{rows: rows}
}

// GetByKey obtiene un parámetro por clave, o nil si no existe.
func (r *SettingRepo) GetByKey(key string) (*entity.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rows[key]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Update cambia el valor de un parámetro existente.
func (r *SettingRepo) Update(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[key]
	if !ok {
		return domain.ErrNotFound
	}
	s.Value = value
	s.UpdatedAt = time.Now()
	r.rows[key] = s
	return nil
}

// List devuelve todos los parámetros ordenados por clave.
func (r *SettingRepo) List() ([]*entity.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	settings := make([]*entity.Setting, 0, len(r.rows))
	for _, s := range r.rows {
		st := s
		settings = append(settings, &st)
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}
