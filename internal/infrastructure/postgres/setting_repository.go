package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de SettingRepository sobre PostgreSQL (usable con pool o tx).
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// GetByKey obtiene un parámetro por clave, o nil si no existe.
func (r *SettingRepo) GetByKey(key string) (*entity.Setting, error) {
	var s entity.Setting
	err := r.q.QueryRow(context.Background(),
		`SELECT id, key, value, type, description, created_at, updated_at FROM setting WHERE key = $1`, key).
		Scan(&s.ID, &s.Key, &s.Value, &s.Type, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Update cambia el valor de un parámetro existente.
func (r *SettingRepo) Update(key, value string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE setting SET value = $2, updated_at = now() WHERE key = $1`, key, value)
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los parámetros ordenados por clave.
func (r *SettingRepo) List() ([]*entity.Setting, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, key, value, type, description, created_at, updated_at FROM setting ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Type, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
