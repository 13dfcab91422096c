package service

import (
	"context"
	"testing"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanningService() (*PlanningService, *fakePlanRepo) {
	plans := newFakePlanRepo()
	catalog := NewCatalogService(newFakeCatalogRepo(), nil)
	return NewPlanningService(plans, catalog, 3), plans
}

func TestPlanningService_PlanSupplier(t *testing.T) {
	svc, plans := newTestPlanningService()
	ctx := context.Background()

	plans.entries[1] = []domain.PlanEntry{
		{ProductID: 10, MonthlyConsumption: 100, StockOnHand: 50, StockAtSupplier: 20},
	}

	plan, err := svc.PlanSupplier(ctx, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, "Молочный двор", plan.SupplierName)
	assert.Equal(t, 3, plan.Months)
	require.Len(t, plan.Products, 2)

	milk := plan.Products[0]
	assert.Equal(t, int64(10), milk.ProductID)
	require.Len(t, milk.Plan, 3)
	// 30 missing -> 3 boxes of 12 that stock the next month
	assert.Equal(t, 3, milk.Plan[0].OrderBoxes)
	assert.InDelta(t, 36.0, milk.Plan[0].OrderUnits, 1e-9)
	assert.InDelta(t, 36.0, milk.Plan[1].AvailableStock, 1e-9)
	assert.Equal(t, 6, milk.Plan[1].OrderBoxes)

	cream := plan.Products[1]
	for _, month := range cream.Plan {
		assert.Zero(t, month.OrderBoxes)
	}

	assert.Equal(t, []int{3, 6, 3}, plan.Totals)
}

func TestPlanningService_PlanSupplierRejects(t *testing.T) {
	svc, _ := newTestPlanningService()
	ctx := context.Background()

	_, err := svc.PlanSupplier(ctx, 1, 25)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.PlanSupplier(ctx, 99, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanningService_PlanAll(t *testing.T) {
	svc, plans := newTestPlanningService()
	plans.entries[2] = []domain.PlanEntry{{ProductID: 20, MonthlyConsumption: 25}}

	all, err := svc.PlanAll(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, int64(1), all[0].SupplierID)
	assert.Equal(t, int64(2), all[1].SupplierID)
	// 25 per month in boxes of 10: 3 boxes also cover the second month
	assert.Equal(t, []int{3, 0}, all[1].Totals)
}

func TestPlanningService_SavePlanEntries(t *testing.T) {
	svc, plans := newTestPlanningService()
	ctx := context.Background()

	entries := []domain.PlanEntry{{ProductID: 11, MonthlyConsumption: 12}}
	require.NoError(t, svc.SavePlanEntries(ctx, 1, entries))
	assert.Equal(t, entries, plans.entries[1])

	err := svc.SavePlanEntries(ctx, 1, []domain.PlanEntry{{ProductID: 20}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.SavePlanEntries(ctx, 1, []domain.PlanEntry{{ProductID: 10, StockOnHand: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.SavePlanEntries(ctx, 1, []domain.PlanEntry{{ProductID: 10, MonthlyConsumption: 5}, {ProductID: 10, MonthlyConsumption: 7}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entries, plans.entries[1], "rejected batch must not overwrite stored entries")
}
