package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })

	return Wrap(sqlx.NewDb(raw, "postgres")), mock
}

func ptr[T any](v T) *T {
	return &v
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:           uuid.MustParse("6f1c2a52-43b8-4c64-9a53-8c1d1f0b6e01"),
		SupplierID:   1,
		LegalEntity:  "ООО Ромашка",
		Status:       domain.OrderStatusDraft,
		DeliveryDate: ptr(time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)),
		PeriodDays:   30,
		Unit:         calculator.UnitPieces,
		Lines: []domain.OrderLine{
			{ProductID: ptr(int64(10)), Position: 7, Name: "Молоко", QtyPerBox: 12, ConsumptionPeriod: 300},
			{Position: 3, Name: "Творог", QtyPerBox: 4, FinalOrder: 8},
		},
	}
}

func TestOrderRepository_SaveOrderRewritesLines(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	order := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO orders .* ON CONFLICT \(id\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM order_lines WHERE order_id = \$1`).
		WithArgs(order.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO order_lines .* VALUES \(.*\),\(.*\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveOrder(context.Background(), order))
	require.NoError(t, mock.ExpectationsWereMet())

	for i, line := range order.Lines {
		assert.Equal(t, i, line.Position)
		assert.Equal(t, order.ID, line.OrderID)
	}
}

func TestOrderRepository_SaveOrderRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	order := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO orders`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM order_lines`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO order_lines`).WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.SaveOrder(context.Background(), order)
	assert.ErrorContains(t, err, "duplicate key")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetOrderKeepsLineOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	id := uuid.MustParse("6f1c2a52-43b8-4c64-9a53-8c1d1f0b6e01")
	created := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	orderRows := sqlmock.NewRows([]string{
		"id", "supplier_id", "legal_entity", "status", "today", "delivery_date",
		"period_days", "safety_days", "safety_percent", "unit", "created_at", "updated_at",
	}).AddRow(id.String(), 1, "ООО Ромашка", "sent", nil, created, 30, 3, 10.0, "boxes", created, created)
	mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1`).WithArgs(id.String()).WillReturnRows(orderRows)

	lineRows := sqlmock.NewRows([]string{
		"id", "order_id", "product_id", "position", "sku", "name", "qty_per_box", "boxes_per_pallet",
		"price_per_unit", "consumption_period", "stock", "transit", "final_order", "calculated_order",
	}).
		AddRow(1, id.String(), 10, 0, "MLK-1", "Молоко", 12.0, 40.0, "1.50", 300.0, 40.0, 0.0, 5.0, 6.0).
		AddRow(2, id.String(), nil, 1, nil, "Творог", 4.0, nil, nil, 30.0, 0.0, 0.0, 0.0, 1.0)
	mock.ExpectQuery(`FROM order_lines\s+WHERE order_id = \$1\s+ORDER BY position`).WithArgs(id.String()).WillReturnRows(lineRows)

	order, err := repo.GetOrder(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, domain.OrderStatusSent, order.Status)
	assert.Equal(t, calculator.UnitBoxes, order.Unit)
	assert.Nil(t, order.Today)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "Молоко", order.Lines[0].Name)
	assert.Equal(t, "1.5", order.Lines[0].PricePerUnit.String())
	assert.Equal(t, "Творог", order.Lines[1].Name)
	assert.Nil(t, order.Lines[1].ProductID)
	assert.Nil(t, order.Lines[1].BoxesPerPallet)
}

func TestOrderRepository_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err := repo.GetOrder(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mock.ExpectExec(`UPDATE orders SET status = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), id, domain.OrderStatusSent), domain.ErrNotFound)

	mock.ExpectExec(`DELETE FROM orders WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteOrder(context.Background(), id), domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetProductsByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "supplier_id", "sku", "name", "qty_per_box", "boxes_per_pallet", "price_per_unit", "sort_order", "created_at", "updated_at",
	}).AddRow(10, 1, "MLK-1", "Молоко", 12.0, nil, nil, 1, time.Now(), time.Now())
	mock.ExpectQuery(`WHERE id = ANY\(\$1::bigint\[\]\)`).WithArgs("{10,11}").WillReturnRows(rows)

	products, err := repo.GetProductsByIDs(context.Background(), []int64{10, 11})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(10), products[0].ID)

	empty, err := repo.GetProductsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_UpdateIsScopedToSupplier(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectExec(`UPDATE products SET .* WHERE id = \$\d+ AND supplier_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpsertProduct(context.Background(), &domain.Product{ID: 10, SupplierID: 2, Name: "Молоко", QtyPerBox: 12})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
