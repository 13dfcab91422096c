package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const orderColumns = `id, supplier_id, legal_entity, status, today, delivery_date, period_days, safety_days, safety_percent, unit, created_at, updated_at`

type orderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		upsert := `
			INSERT INTO orders (id, supplier_id, legal_entity, status, today, delivery_date, period_days, safety_days, safety_percent, unit)
			VALUES (:id, :supplier_id, :legal_entity, :status, :today, :delivery_date, :period_days, :safety_days, :safety_percent, :unit)
			ON CONFLICT (id) DO UPDATE SET
				supplier_id = EXCLUDED.supplier_id,
				legal_entity = EXCLUDED.legal_entity,
				status = EXCLUDED.status,
				today = EXCLUDED.today,
				delivery_date = EXCLUDED.delivery_date,
				period_days = EXCLUDED.period_days,
				safety_days = EXCLUDED.safety_days,
				safety_percent = EXCLUDED.safety_percent,
				unit = EXCLUDED.unit,
				updated_at = NOW()
		`
		if _, err := tx.NamedExecContext(ctx, upsert, order); err != nil {
			return fmt.Errorf("error saving order %s: %w", order.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM order_lines WHERE order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("error clearing lines of order %s: %w", order.ID, err)
		}

		if len(order.Lines) == 0 {
			return nil
		}

		for i := range order.Lines {
			order.Lines[i].OrderID = order.ID
			order.Lines[i].Position = i
		}

		insertLines := `
			INSERT INTO order_lines (order_id, product_id, position, sku, name, qty_per_box, boxes_per_pallet, price_per_unit,
				consumption_period, stock, transit, final_order, calculated_order)
			VALUES (:order_id, :product_id, :position, :sku, :name, :qty_per_box, :boxes_per_pallet, :price_per_unit,
				:consumption_period, :stock, :transit, :final_order, :calculated_order)
		`
		if _, err := tx.NamedExecContext(ctx, insertLines, order.Lines); err != nil {
			return fmt.Errorf("error saving lines of order %s: %w", order.ID, err)
		}
		return nil
	})
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.GetContext(ctx, &order, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting order %s: %w", id, err)
	}

	query := `
		SELECT id, order_id, product_id, position, sku, name, qty_per_box, boxes_per_pallet, price_per_unit,
			consumption_period, stock, transit, final_order, calculated_order
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position
	`
	order.Lines = []domain.OrderLine{}
	if err := r.db.SelectContext(ctx, &order.Lines, query, id); err != nil {
		return nil, fmt.Errorf("error getting lines of order %s: %w", id, err)
	}

	return &order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, supplierID int64, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	if supplierID > 0 {
		query += ` WHERE supplier_id = $1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, supplierID, limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	orders := []domain.Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating status of order %s: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("order %s", id))
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting order %s: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("order %s", id))
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows for %s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}
