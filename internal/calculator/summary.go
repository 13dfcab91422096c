package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// LineResult pairs an order item with everything derived from it.
type LineResult struct {
	Item     OrderItem      `json:"item"`
	Order    OrderResult    `json:"order"`
	Shortage ShortageResult `json:"shortage"`
}

// OrderSummary is the full calculation of an order plus its totals.
type OrderSummary struct {
	Lines         []LineResult    `json:"lines"`
	TotalBoxes    int             `json:"total_boxes"`
	TotalPieces   float64         `json:"total_pieces"`
	TotalPallets  int             `json:"total_pallets"`
	ShortageCount int             `json:"shortage_count"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// Summarize calculates every item and totals the final order quantities.
func Summarize(items []OrderItem, settings Settings) OrderSummary {
	summary := OrderSummary{
		Lines:     make([]LineResult, 0, len(items)),
		TotalCost: decimal.Zero,
	}

	for _, item := range items {
		line := LineResult{
			Item:     item,
			Order:    CalculateOrder(item, settings),
			Shortage: DetectShortage(item, settings),
		}
		summary.Lines = append(summary.Lines, line)

		boxes, pieces := finalOrderQuantities(item, settings.Unit)
		summary.TotalBoxes = addClamped(summary.TotalBoxes, boxes)
		summary.TotalPieces += pieces

		if line.Order.PalletsInfo != nil {
			summary.TotalPallets = addClamped(summary.TotalPallets, line.Order.PalletsInfo.Pallets)
		}
		if line.Shortage.HasShortage {
			summary.ShortageCount++
		}
		if item.PricePerUnit != nil {
			cost := decimal.NewFromFloat(pieces).Mul(*item.PricePerUnit)
			summary.TotalCost = summary.TotalCost.Add(cost)
		}
	}

	summary.TotalCost = summary.TotalCost.Round(2)
	return summary
}

// finalOrderQuantities expresses the final order of item in whole boxes and in pieces.
func finalOrderQuantities(item OrderItem, unit Unit) (int, float64) {
	if unit == UnitBoxes {
		return clampInt(math.Ceil(item.FinalOrder)), BoxesToPieces(item.FinalOrder, packSize(item.QtyPerBox))
	}
	return PiecesToBoxes(item.FinalOrder, item.QtyPerBox), item.FinalOrder
}
