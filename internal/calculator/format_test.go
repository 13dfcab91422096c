package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	testCases := []struct {
		value    float64
		decimals int
		expected string
	}{
		{1234.5, 2, "1\u00a0234,5"},
		{1000, 2, "1\u00a0000"},
		{12.25, 2, "12,25"},
		{999, 0, "999"},
		{123456, 0, "123\u00a0456"},
		{-1234567.94, 1, "-1\u00a0234\u00a0567,9"},
		{-0.001, 2, "0"},
		{8.333333, 2, "8,33"},
		{1e19, 2, "10\u00a0000\u00a0000\u00a0000\u00a0000\u00a0000\u00a0000"},
		{-2.5e17, 0, "-250\u00a0000\u00a0000\u00a0000\u00a0000\u00a0000"},
		{1.5, 20, "1,5"},
		{2.25, -1, "2"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatQuantity(tc.value, tc.decimals), "value %v", tc.value)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "08.01.2024", FormatDate(date(2024, time.January, 8)))
	assert.Equal(t, "—", FormatDate(nil))
}

func TestUnitConversion(t *testing.T) {
	assert.Equal(t, 9, PiecesToBoxes(100, 12))
	assert.Equal(t, 2, PiecesToBoxes(24, 12))
	assert.Equal(t, 7, PiecesToBoxes(7, 0))
	assert.Equal(t, 0, PiecesToBoxes(0, 12))
	assert.Equal(t, 36.0, BoxesToPieces(3, 12))
	assert.Equal(t, math.MaxInt, PiecesToBoxes(1e30, 6))
	assert.Equal(t, 0, PiecesToBoxes(math.NaN(), 6))
}

func TestClampedCounts(t *testing.T) {
	assert.Equal(t, math.MaxInt, clampInt(math.Inf(1)))
	assert.Equal(t, math.MinInt, clampInt(-1e300))
	assert.Equal(t, 42, clampInt(42))
	assert.Equal(t, math.MaxInt, addClamped(math.MaxInt-1, 5))
	assert.Equal(t, 7, addClamped(3, 4))
}
