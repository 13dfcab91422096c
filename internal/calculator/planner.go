package calculator

import "math"

// PlanMonths projects orders for the given number of consecutive months.
// Consumption depletes stock first (never below zero), then the ordered
// units, rounded up to whole boxes, replenish it. The rounding surplus
// carries into later months.
func PlanMonths(item PlanItem, months int) []MonthResult {
	if months <= 0 {
		return []MonthResult{}
	}

	plan := make([]MonthResult, 0, months)
	available := item.StockOnHand + item.StockAtSupplier

	for m := 0; m < months; m++ {
		deficit := math.Max(item.MonthlyConsumption-available, 0)

		var orderBoxes int
		var orderUnits float64
		if item.QtyPerBox > 0 {
			boxes := math.Ceil(deficit / item.QtyPerBox)
			orderBoxes = clampInt(boxes)
			orderUnits = boxes * item.QtyPerBox
		}

		plan = append(plan, MonthResult{
			Month:          m,
			AvailableStock: available,
			Need:           item.MonthlyConsumption,
			Deficit:        deficit,
			OrderBoxes:     orderBoxes,
			OrderUnits:     orderUnits,
		})

		available = math.Max(available-item.MonthlyConsumption, 0) + orderUnits
	}

	return plan
}

// Recompute rebuilds the plan of p from scratch.
func (p *PlanItem) Recompute(months int) {
	p.Plan = PlanMonths(*p, months)
}

// MonthlyTotals sums the ordered boxes per month across items. Items with a
// shorter plan contribute nothing to the later months.
func MonthlyTotals(items []PlanItem, months int) []int {
	if months <= 0 {
		return []int{}
	}
	totals := make([]int, months)
	for _, item := range items {
		for _, month := range item.Plan {
			if month.Month >= 0 && month.Month < months {
				totals[month.Month] = addClamped(totals[month.Month], month.OrderBoxes)
			}
		}
	}
	return totals
}
