package calculator

import "math"

// DetectShortage reports whether stock on hand plus transit runs out before
// the delivery date. The final order is ignored: it cannot arrive earlier.
func DetectShortage(item OrderItem, settings Settings) ShortageResult {
	if settings.Today == nil || settings.DeliveryDate == nil || item.ConsumptionPeriod <= 0 {
		return ShortageResult{}
	}

	rate := dailyRate(item.ConsumptionPeriod, settings.PeriodDays)
	if rate <= 0 {
		return ShortageResult{}
	}

	daysUntilDelivery := daysBetween(*settings.Today, *settings.DeliveryDate)
	consumedBeforeDelivery := rate * float64(daysUntilDelivery)
	totalStock := item.Stock + item.Transit

	if totalStock >= consumedBeforeDelivery {
		return ShortageResult{}
	}

	deficit := consumedBeforeDelivery - totalStock
	result := ShortageResult{
		HasShortage:   true,
		DeficitAmount: deficit,
		DeficitDays:   clampInt(math.Ceil(deficit / rate)),
	}

	if settings.Unit != UnitBoxes && item.QtyPerBox > 0 {
		boxes := PiecesToBoxes(deficit, item.QtyPerBox)
		result.DeficitBoxes = &boxes
	}

	return result
}
