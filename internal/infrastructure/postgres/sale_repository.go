package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del libro de ventas sobre PostgreSQL.
// Recibe el pool (no un Querier) porque Create abre su propia transacción:
// cabecera y líneas se insertan como unidad o no se insertan.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// Create inserta la venta y sus líneas en una transacción; asigna los IDs.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO sale (store_id, staff_id, total_price, deposit, sale_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sale_at, created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		sale.StoreID, sale.StaffID, sale.TotalPrice, sale.Deposit, sale.SaleAt,
	).Scan(&sale.ID, &sale.SaleAt, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for i := range sale.Items {
		line := &sale.Items[i]
		line.SaleID = sale.ID
		err := tx.QueryRow(ctx,
			`INSERT INTO sale_line_item (sale_id, item_id, price, quantity)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			line.SaleID, line.ItemID, line.Price, line.Quantity,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus líneas en orden de inserción, o nil si no existe.
func (r *SaleRepo) GetByID(id int) (*entity.Sale, error) {
	ctx := context.Background()
	var s entity.Sale
	err := r.pool.QueryRow(ctx,
		`SELECT id, store_id, staff_id, total_price, deposit, sale_at, created_at, updated_at
		 FROM sale WHERE id = $1`, id).
		Scan(&s.ID, &s.StoreID, &s.StaffID, &s.TotalPrice, &s.Deposit, &s.SaleAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.linesBySale(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// List lista todas las ventas con sus líneas.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT id, store_id, staff_id, total_price, deposit, sale_at, created_at, updated_at
		 FROM sale ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.StoreID, &s.StaffID, &s.TotalPrice, &s.Deposit, &s.SaleAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.linesBySale(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

func (r *SaleRepo) linesBySale(ctx context.Context, saleID int) ([]entity.SaleLineItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, sale_id, item_id, price, quantity
		 FROM sale_line_item WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleLineItem
	for rows.Next() {
		var li entity.SaleLineItem
		if err := rows.Scan(&li.ID, &li.SaleID, &li.ItemID, &li.Price, &li.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		items = append(items, li)
	}
	return items, rows.Err()
}
