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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, code, name, price, stock, description, created_at, updated_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Code, &it.Name, &it.Price, &it.Stock, &it.Description, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un artículo nuevo y asigna el ID secuencial.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO item (code, name, price, stock, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		item.Code, item.Name, item.Price, item.Stock, item.Description,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID, o nil si no existe.
func (r *ItemRepo) GetByID(id int) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM item WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// GetByCode obtiene un artículo por código, o nil si no existe.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM item WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by code: %w", err)
	}
	return it, nil
}

// Update actualiza un artículo existente.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE item SET code = $2, name = $3, price = $4, stock = $5, description = $6, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Price, item.Stock, item.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id int) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM item WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los artículos.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+itemColumns+` FROM item ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Code, &it.Name, &it.Price, &it.Stock, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DecrementStock resta stock con un check-and-set atómico: el UPDATE
// condicional solo escribe si hay stock suficiente, y dos decrementos
// concurrentes sobre la misma fila se serializan en la base.
func (r *ItemRepo) DecrementStock(id, quantity int) (*entity.Item, error) {
	query := `
		UPDATE item SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2
		RETURNING ` + itemColumns
	it, err := scanItem(r.q.QueryRow(context.Background(), query, id, quantity))
	if err == nil {
		return it, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	// Sin fila afectada: distinguir artículo inexistente de stock insuficiente.
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInsufficientStock
}

// IncrementStock devuelve unidades al stock (compensación de un decremento).
func (r *ItemRepo) IncrementStock(id, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE item SET stock = stock + $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
