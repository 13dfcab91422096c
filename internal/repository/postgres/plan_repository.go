package postgres

import (
	"context"
	"fmt"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type planRepository struct {
	db *DB
}

func NewPlanRepository(db *DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) ListPlanEntries(ctx context.Context, supplierID int64) ([]domain.PlanEntry, error) {
	query := `
		SELECT pe.product_id, pe.monthly_consumption, pe.stock_on_hand, pe.stock_at_supplier, pe.updated_at
		FROM plan_entries pe
		JOIN products p ON p.id = pe.product_id
		WHERE p.supplier_id = $1
	`

	entries := []domain.PlanEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, supplierID); err != nil {
		return nil, fmt.Errorf("error listing plan entries of supplier %d: %w", supplierID, err)
	}
	return entries, nil
}

func (r *planRepository) SavePlanEntries(ctx context.Context, supplierID int64, entries []domain.PlanEntry) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		clearQuery := `DELETE FROM plan_entries WHERE product_id IN (SELECT id FROM products WHERE supplier_id = $1)`
		if _, err := tx.ExecContext(ctx, clearQuery, supplierID); err != nil {
			return fmt.Errorf("error clearing plan entries of supplier %d: %w", supplierID, err)
		}

		if len(entries) == 0 {
			return nil
		}

		insert := `
			INSERT INTO plan_entries (product_id, monthly_consumption, stock_on_hand, stock_at_supplier, updated_at)
			VALUES (:product_id, :monthly_consumption, :stock_on_hand, :stock_at_supplier, NOW())
		`
		if _, err := tx.NamedExecContext(ctx, insert, entries); err != nil {
			return fmt.Errorf("error saving plan entries of supplier %d: %w", supplierID, err)
		}
		return nil
	})
}
