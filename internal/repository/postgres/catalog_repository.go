package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/repository"
	"github.com/lib/pq"
)

const productColumns = `id, supplier_id, sku, name, qty_per_box, boxes_per_pallet, price_per_unit, sort_order, created_at, updated_at`

type catalogRepository struct {
	db *DB
}

func NewCatalogRepository(db *DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT id, name, legal_entity, created_at, updated_at FROM suppliers ORDER BY name`

	suppliers := []domain.Supplier{}
	if err := r.db.SelectContext(ctx, &suppliers, query); err != nil {
		return nil, fmt.Errorf("error listing suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *catalogRepository) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	query := `SELECT id, name, legal_entity, created_at, updated_at FROM suppliers WHERE id = $1`

	var supplier domain.Supplier
	if err := r.db.GetContext(ctx, &supplier, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("supplier %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting supplier %d: %w", id, err)
	}
	return &supplier, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context, supplierID int64) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE supplier_id = $1 ORDER BY sort_order, name`

	products := []domain.Product{}
	if err := r.db.SelectContext(ctx, &products, query, supplierID); err != nil {
		return nil, fmt.Errorf("error listing products of supplier %d: %w", supplierID, err)
	}
	return products, nil
}

func (r *catalogRepository) GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	products := []domain.Product{}
	if len(ids) == 0 {
		return products, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1::bigint[]) ORDER BY sort_order, name`
	if err := r.db.SelectContext(ctx, &products, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("error getting products by ids: %w", err)
	}
	return products, nil
}

func (r *catalogRepository) UpsertProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == 0 {
		query := `
			INSERT INTO products (supplier_id, sku, name, qty_per_box, boxes_per_pallet, price_per_unit, sort_order)
			VALUES (:supplier_id, :sku, :name, :qty_per_box, :boxes_per_pallet, :price_per_unit, :sort_order)
			RETURNING id, created_at, updated_at
		`
		rows, err := r.db.NamedQueryContext(ctx, query, product)
		if err != nil {
			return fmt.Errorf("error inserting product: %w", err)
		}
		defer rows.Close()
		if rows.Next() {
			if err := rows.Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt); err != nil {
				return fmt.Errorf("error reading inserted product: %w", err)
			}
		}
		return rows.Err()
	}

	query := `
		UPDATE products SET
			sku = :sku,
			name = :name,
			qty_per_box = :qty_per_box,
			boxes_per_pallet = :boxes_per_pallet,
			price_per_unit = :price_per_unit,
			sort_order = :sort_order,
			updated_at = NOW()
		WHERE id = :id AND supplier_id = :supplier_id
	`
	res, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("error updating product %d: %w", product.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("product %d: %w", product.ID, domain.ErrNotFound)
	}
	return nil
}
