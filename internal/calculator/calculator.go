// Package calculator holds the order quantity rules: recommended order,
// stock coverage, shortage warnings, pallet breakdown and multi-month plans.
// Every function here is pure and never fails; missing inputs degrade to
// zero or nil results.
package calculator

import "math"

// dailyRate returns consumption per day, or 0 when the period is unset.
func dailyRate(consumptionPeriod float64, periodDays int) float64 {
	if periodDays <= 0 {
		return 0
	}
	return consumptionPeriod / float64(periodDays)
}

// CalculateOrder computes the recommended order for one item under the given settings.
func CalculateOrder(item OrderItem, settings Settings) OrderResult {
	result := OrderResult{}

	// 1. Both date anchors are required
	if settings.Today == nil || settings.DeliveryDate == nil {
		return result
	}
	today := *settings.Today

	// 2. Lead time the current stock has to survive
	transitDays := max(daysBetween(today, *settings.DeliveryDate), 0)

	// 3. Daily consumption
	rate := dailyRate(item.ConsumptionPeriod, settings.PeriodDays)

	// 4. Need = lead time demand + safety window demand
	need := rate*float64(transitDays) + rate*float64(settings.SafetyDays)

	// 5. Safety percent applied on top
	totalNeed := need + need*(settings.SafetyPercent/100)

	// 6. Order what stock does not cover, whole boxes rounded up
	order := math.Max(totalNeed-item.Stock, 0)
	if settings.Unit == UnitBoxes {
		order = math.Ceil(order)
	}
	result.CalculatedOrder = order

	// 7. Coverage of stock plus the currently entered final order
	if rate > 0 {
		daysCovered := (item.Stock + item.FinalOrder) / rate
		coverage := addDays(today, daysCovered)
		result.CoverageDate = &coverage
	}

	// 8. Pallet breakdown of the final order
	result.PalletsInfo = palletsFor(item, settings.Unit)

	return result
}

// palletsFor splits the final order into full pallets and leftover boxes.
// Pallets round down and leftover boxes round up.
func palletsFor(item OrderItem, unit Unit) *PalletsInfo {
	if item.BoxesPerPallet == nil || *item.BoxesPerPallet <= 0 || item.FinalOrder == 0 {
		return nil
	}
	perPallet := *item.BoxesPerPallet

	boxes := item.FinalOrder
	if unit != UnitBoxes {
		boxes = item.FinalOrder / packSize(item.QtyPerBox)
	}

	return &PalletsInfo{
		Pallets:   clampInt(math.Floor(boxes / perPallet)),
		BoxesLeft: clampInt(math.Ceil(math.Mod(boxes, perPallet))),
	}
}
