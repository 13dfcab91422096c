package calculator

import "time"

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ptr[T any](v T) *T {
	return &v
}

// weekSettings is a 7 day lead time, 30 day period and 3 safety days.
func weekSettings() Settings {
	return Settings{
		Today:        date(2024, time.January, 1),
		DeliveryDate: date(2024, time.January, 8),
		PeriodDays:   30,
		SafetyDays:   3,
		Unit:         UnitPieces,
	}
}
