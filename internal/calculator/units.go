package calculator

import "math"

// packSize treats a missing or non-positive pack size as a single piece.
func packSize(qtyPerBox float64) float64 {
	if qtyPerBox <= 0 {
		return 1
	}
	return qtyPerBox
}

// PiecesToBoxes converts pieces to whole boxes, rounding up.
func PiecesToBoxes(pieces, qtyPerBox float64) int {
	return clampInt(math.Ceil(pieces / packSize(qtyPerBox)))
}

// BoxesToPieces converts boxes to pieces.
func BoxesToPieces(boxes, qtyPerBox float64) float64 {
	return boxes * qtyPerBox
}

// clampInt converts a whole number to int, saturating at the int range.
// NaN becomes 0.
func clampInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// addClamped adds two non-negative counts without wrapping past math.MaxInt.
func addClamped(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
