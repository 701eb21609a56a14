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

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository sobre PostgreSQL (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de empleados. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// Create persiste un empleado nuevo y asigna el ID secuencial.
func (r *StaffRepo) Create(staff *entity.Staff) error {
	query := `
		INSERT INTO staff (code, name, store_id, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		staff.Code, staff.Name, staff.StoreID, staff.PasswordHash,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID, o nil si no existe.
func (r *StaffRepo) GetByID(id int) (*entity.Staff, error) {
	var s entity.Staff
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, name, store_id, password_hash, created_at, updated_at FROM staff WHERE id = $1`, id).
		Scan(&s.ID, &s.Code, &s.Name, &s.StoreID, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// Update actualiza un empleado existente.
func (r *StaffRepo) Update(staff *entity.Staff) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE staff SET code = $2, name = $3, store_id = $4, password_hash = $5, updated_at = now() WHERE id = $1`,
		staff.ID, staff.Code, staff.Name, staff.StoreID, staff.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update staff: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *StaffRepo) Delete(id int) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los empleados.
func (r *StaffRepo) List() ([]*entity.Staff, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, name, store_id, password_hash, created_at, updated_at FROM staff ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.StoreID, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
