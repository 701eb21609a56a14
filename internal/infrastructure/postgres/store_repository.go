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

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre PostgreSQL (usable con pool o tx).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de tiendas. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una tienda nueva y asigna el ID secuencial.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO store (code, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query, store.Code, store.Name).
		Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID, o nil si no existe.
func (r *StoreRepo) GetByID(id int) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, name, created_at, updated_at FROM store WHERE id = $1`, id).
		Scan(&s.ID, &s.Code, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Update actualiza una tienda existente.
func (r *StoreRepo) Update(store *entity.Store) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE store SET code = $2, name = $3, updated_at = now() WHERE id = $1`,
		store.ID, store.Code, store.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(id int) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM store WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las tiendas.
func (r *StoreRepo) List() ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, name, created_at, updated_at FROM store ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
