package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		legal_entity TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		supplier_id BIGINT NOT NULL REFERENCES suppliers(id) ON DELETE CASCADE,
		sku TEXT,
		name TEXT NOT NULL,
		qty_per_box NUMERIC(12,3) NOT NULL DEFAULT 1,
		boxes_per_pallet NUMERIC(12,3),
		price_per_unit NUMERIC(14,2),
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_supplier ON products(supplier_id, sort_order)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
		legal_entity TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'draft',
		today DATE,
		delivery_date DATE,
		period_days INTEGER NOT NULL DEFAULT 30,
		safety_days INTEGER NOT NULL DEFAULT 0,
		safety_percent NUMERIC(6,2) NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT 'pieces',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_supplier ON orders(supplier_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_lines (
		id BIGSERIAL PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT REFERENCES products(id) ON DELETE SET NULL,
		position INTEGER NOT NULL,
		sku TEXT,
		name TEXT NOT NULL,
		qty_per_box NUMERIC(12,3) NOT NULL DEFAULT 1,
		boxes_per_pallet NUMERIC(12,3),
		price_per_unit NUMERIC(14,2),
		consumption_period NUMERIC(14,3) NOT NULL DEFAULT 0,
		stock NUMERIC(14,3) NOT NULL DEFAULT 0,
		transit NUMERIC(14,3) NOT NULL DEFAULT 0,
		final_order NUMERIC(14,3) NOT NULL DEFAULT 0,
		calculated_order NUMERIC(14,3) NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id, position)`,
	`CREATE TABLE IF NOT EXISTS plan_entries (
		product_id BIGINT PRIMARY KEY REFERENCES products(id) ON DELETE CASCADE,
		monthly_consumption NUMERIC(14,3) NOT NULL DEFAULT 0,
		stock_on_hand NUMERIC(14,3) NOT NULL DEFAULT 0,
		stock_at_supplier NUMERIC(14,3) NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the schema. Every statement is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	return db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
