package service

import (
	"fmt"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
)

// normalizeSettings fills defaults and rejects values the calculator must never see.
// Date anchors stay optional: the calculator degrades without them.
func normalizeSettings(s calculator.Settings, defaults calculator.Settings) (calculator.Settings, error) {
	if s.PeriodDays <= 0 {
		s.PeriodDays = defaults.PeriodDays
	}
	if s.PeriodDays <= 0 {
		s.PeriodDays = calculator.DefaultPeriodDays
	}
	if s.SafetyDays < 0 {
		return s, fmt.Errorf("safety_days must not be negative: %w", domain.ErrInvalidInput)
	}
	if s.SafetyPercent < 0 {
		return s, fmt.Errorf("safety_percent must not be negative: %w", domain.ErrInvalidInput)
	}
	if s.Unit == "" {
		s.Unit = defaults.Unit
	}
	if !s.Unit.Valid() {
		return s, fmt.Errorf("unknown unit %q: %w", s.Unit, domain.ErrInvalidInput)
	}
	if s.Today != nil {
		today := calculator.Midnight(*s.Today)
		s.Today = &today
	}
	if s.DeliveryDate != nil {
		delivery := calculator.Midnight(*s.DeliveryDate)
		s.DeliveryDate = &delivery
	}
	return s, nil
}

// normalizeItem rejects negative quantities and defaults unknown pack sizes to 1.
func normalizeItem(i int, item calculator.OrderItem) (calculator.OrderItem, error) {
	fields := []struct {
		name  string
		value float64
	}{
		{"consumption_period", item.ConsumptionPeriod},
		{"stock", item.Stock},
		{"transit", item.Transit},
		{"final_order", item.FinalOrder},
	}
	for _, f := range fields {
		if f.value < 0 {
			return item, fmt.Errorf("line %d: %s must not be negative: %w", i+1, f.name, domain.ErrInvalidInput)
		}
	}
	if item.QtyPerBox <= 0 {
		item.QtyPerBox = 1
	}
	if item.BoxesPerPallet != nil && *item.BoxesPerPallet <= 0 {
		item.BoxesPerPallet = nil
	}
	return item, nil
}

func normalizeItems(items []calculator.OrderItem) ([]calculator.OrderItem, error) {
	normalized := make([]calculator.OrderItem, len(items))
	for i, item := range items {
		n, err := normalizeItem(i, item)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}
	return normalized, nil
}
