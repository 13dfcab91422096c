package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/shopspring/decimal"
)

var exportHeader = []string{
	"Артикул", "Наименование", "Ед.", "Расход за период", "Остаток", "В пути",
	"Расчёт", "Заказ", "Коробки", "Паллеты", "Хватит до", "Сумма",
}

var unitLabels = map[calculator.Unit]string{
	calculator.UnitPieces: "шт",
	calculator.UnitBoxes:  "кор",
}

// renderOrderCSV writes the order lines and a totals row. Numbers use a
// decimal comma, so fields are separated by semicolons.
func renderOrderCSV(order *domain.Order, summary calculator.OrderSummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = ';'

	title := []string{
		"Заказ " + order.ID.String(),
		order.LegalEntity,
		"Поставка " + calculator.FormatDate(order.DeliveryDate),
		order.Status.Label(),
	}
	if err := writer.Write(title); err != nil {
		return nil, err
	}
	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}

	unit := unitLabels[order.Unit]
	for _, line := range summary.Lines {
		item := line.Item
		sku := ""
		if item.SKU != nil {
			sku = *item.SKU
		}

		record := []string{
			sku,
			item.Name,
			unit,
			calculator.FormatQuantity(item.ConsumptionPeriod, 2),
			calculator.FormatQuantity(item.Stock, 2),
			calculator.FormatQuantity(item.Transit, 2),
			calculator.FormatQuantity(line.Order.CalculatedOrder, 2),
			calculator.FormatQuantity(item.FinalOrder, 2),
			boxesColumn(item, order.Unit),
			palletsColumn(line.Order.PalletsInfo),
			calculator.FormatDate(line.Order.CoverageDate),
			costColumn(item, order.Unit),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	totals := []string{
		"", "Итого", "", "", "", "", "", "",
		fmt.Sprintf("%d", summary.TotalBoxes),
		fmt.Sprintf("%d", summary.TotalPallets),
		"",
		summary.TotalCost.StringFixed(2),
	}
	if err := writer.Write(totals); err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func boxesColumn(item calculator.OrderItem, unit calculator.Unit) string {
	if unit == calculator.UnitBoxes {
		return calculator.FormatQuantity(item.FinalOrder, 2)
	}
	return fmt.Sprintf("%d", calculator.PiecesToBoxes(item.FinalOrder, item.QtyPerBox))
}

// costColumn prices the final order in pieces; empty when the product has no price.
func costColumn(item calculator.OrderItem, unit calculator.Unit) string {
	if item.PricePerUnit == nil {
		return ""
	}
	pieces := item.FinalOrder
	if unit == calculator.UnitBoxes {
		pieces = calculator.BoxesToPieces(item.FinalOrder, item.QtyPerBox)
	}
	return decimal.NewFromFloat(pieces).Mul(*item.PricePerUnit).StringFixed(2)
}

func palletsColumn(info *calculator.PalletsInfo) string {
	if info == nil {
		return ""
	}
	return fmt.Sprintf("%d + %d кор", info.Pallets, info.BoxesLeft)
}
