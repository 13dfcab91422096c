package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSafetyDays(t *testing.T) {
	today := *date(2024, time.January, 30)

	assert.Equal(t, *date(2024, time.February, 4), ConvertSafetyDays(5, today))
	assert.Equal(t, today, ConvertSafetyDays(0, today))
}

func TestConvertSafetyEndDate(t *testing.T) {
	today := *date(2024, time.January, 1)

	testCases := []struct {
		name     string
		endDate  time.Time
		expected int
	}{
		{"whole days", *date(2024, time.January, 10), 9},
		{"partial day rounds up", time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC), 10},
		{"same day", today, 0},
		{"past date clamps to zero", *date(2023, time.December, 1), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ConvertSafetyEndDate(tc.endDate, today))
		})
	}
}

func TestSafetyStock_Transitions(t *testing.T) {
	s := NewSafetyStock(*date(2024, time.January, 1))
	assert.Equal(t, 0, s.Days())
	assert.Nil(t, s.EndDate())

	s.SetDays(5)
	assert.Equal(t, 5, s.Days())
	require.NotNil(t, s.EndDate())
	assert.Equal(t, *date(2024, time.January, 6), *s.EndDate())

	s.SetEndDate(*date(2024, time.January, 10))
	assert.Equal(t, 9, s.Days())
	assert.Equal(t, *date(2024, time.January, 10), *s.EndDate())

	// the day count is held, the date moves
	s.SetToday(*date(2024, time.January, 5))
	assert.Equal(t, 9, s.Days())
	assert.Equal(t, *date(2024, time.January, 14), *s.EndDate())

	s.SetEndDate(*date(2024, time.January, 2))
	assert.Equal(t, 0, s.Days())
	assert.Nil(t, s.EndDate())
}

func TestSafetyStock_SetTodayWhenUnset(t *testing.T) {
	s := NewSafetyStock(*date(2024, time.January, 1))

	s.SetToday(*date(2024, time.March, 1))

	assert.Equal(t, *date(2024, time.March, 1), s.Today())
	assert.Nil(t, s.EndDate())
}

func TestSafetyStock_EndDateIsACopy(t *testing.T) {
	s := NewSafetyStock(*date(2024, time.January, 1))
	s.SetDays(3)

	end := s.EndDate()
	*end = end.AddDate(1, 0, 0)

	assert.Equal(t, *date(2024, time.January, 4), *s.EndDate())
}
