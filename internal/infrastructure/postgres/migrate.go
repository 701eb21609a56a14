package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe y siembra los datos iniciales
// (parámetros por defecto y una tienda/empleado inicial para que la caja
// sea usable recién instalada).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
	CREATE TABLE IF NOT EXISTS item (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		price BIGINT NOT NULL CHECK (price >= 0),
		stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS store (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS staff (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		store_id BIGINT NOT NULL REFERENCES store(id),
		password_hash TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS sale (
		id BIGSERIAL PRIMARY KEY,
		store_id BIGINT NOT NULL REFERENCES store(id),
		staff_id BIGINT NOT NULL REFERENCES staff(id),
		total_price BIGINT NOT NULL,
		deposit BIGINT NOT NULL,
		sale_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS sale_line_item (
		id BIGSERIAL PRIMARY KEY,
		sale_id BIGINT NOT NULL REFERENCES sale(id) ON DELETE CASCADE,
		item_id BIGINT NOT NULL REFERENCES item(id),
		price BIGINT NOT NULL,
		quantity BIGINT NOT NULL CHECK (quantity > 0)
	);

	CREATE TABLE IF NOT EXISTS setting (
		id BIGSERIAL PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		value TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'string',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_sale_store_id ON sale(store_id);
	CREATE INDEX IF NOT EXISTS idx_sale_staff_id ON sale(staff_id);
	CREATE INDEX IF NOT EXISTS idx_sale_line_item_sale_id ON sale_line_item(sale_id);
	CREATE INDEX IF NOT EXISTS idx_sale_line_item_item_id ON sale_line_item(item_id);

	INSERT INTO setting (key, value, type, description) VALUES
		('shopName', 'POS Shop', 'string', 'Nombre de la tienda'),
		('receiptFooter', '¡Gracias por su compra!', 'string', 'Pie del recibo'),
		('taxRate', '10', 'number', 'Tasa de impuesto (%)'),
		('currency', 'JPY', 'string', 'Código de moneda')
	ON CONFLICT (key) DO NOTHING;

	INSERT INTO store (code, name) VALUES ('STORE-00000001', 'Tienda principal')
	ON CONFLICT (code) DO NOTHING;

	INSERT INTO staff (code, name, store_id)
	SELECT 'STAFF-00000001', 'Admin', id FROM store WHERE code = 'STORE-00000001'
	ON CONFLICT (code) DO NOTHING;
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ejecutar migraciones: %w", err)
	}
	return nil
}
