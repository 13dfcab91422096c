package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShortage_Scenario(t *testing.T) {
	item := OrderItem{QtyPerBox: 6, ConsumptionPeriod: 210, Stock: 20, FinalOrder: 1000}

	result := DetectShortage(item, weekSettings())

	assert.True(t, result.HasShortage)
	assert.Equal(t, 29.0, result.DeficitAmount)
	assert.Equal(t, 5, result.DeficitDays)
	require.NotNil(t, result.DeficitBoxes)
	assert.Equal(t, 5, *result.DeficitBoxes)
}

func TestDetectShortage_TransitCounts(t *testing.T) {
	item := OrderItem{QtyPerBox: 6, ConsumptionPeriod: 210, Stock: 20, Transit: 29}

	result := DetectShortage(item, weekSettings())

	assert.Equal(t, ShortageResult{}, result)
}

func TestDetectShortage_BoxesUnitHasNoBoxEquivalent(t *testing.T) {
	settings := weekSettings()
	settings.Unit = UnitBoxes

	result := DetectShortage(OrderItem{QtyPerBox: 6, ConsumptionPeriod: 210, Stock: 20}, settings)

	assert.True(t, result.HasShortage)
	assert.Nil(t, result.DeficitBoxes)
}

func TestDetectShortage_NoWarning(t *testing.T) {
	noPeriod := weekSettings()
	noPeriod.PeriodDays = 0

	noDelivery := weekSettings()
	noDelivery.DeliveryDate = nil

	pastDelivery := weekSettings()
	pastDelivery.DeliveryDate = date(2023, time.December, 20)

	testCases := []struct {
		name     string
		item     OrderItem
		settings Settings
	}{
		{"no consumption", OrderItem{Stock: 0}, weekSettings()},
		{"zero period days", OrderItem{ConsumptionPeriod: 210}, noPeriod},
		{"no delivery date", OrderItem{ConsumptionPeriod: 210}, noDelivery},
		{"delivery already passed", OrderItem{ConsumptionPeriod: 210}, pastDelivery},
		{"stock lasts exactly", OrderItem{ConsumptionPeriod: 210, Stock: 49}, weekSettings()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, DetectShortage(tc.item, tc.settings).HasShortage)
		})
	}
}

func TestDetectShortage_HugeConsumptionSaturatesBoxes(t *testing.T) {
	result := DetectShortage(OrderItem{QtyPerBox: 6, ConsumptionPeriod: 1e30}, weekSettings())

	assert.True(t, result.HasShortage)
	assert.Positive(t, result.DeficitDays)
	require.NotNil(t, result.DeficitBoxes)
	assert.Equal(t, math.MaxInt, *result.DeficitBoxes)
}
