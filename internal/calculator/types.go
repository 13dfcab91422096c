package calculator

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is the unit in which order quantities are entered and read.
type Unit string

const (
	UnitPieces Unit = "pieces"
	UnitBoxes  Unit = "boxes"
)

// DefaultPeriodDays is the consumption window used when none is configured.
const DefaultPeriodDays = 30

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return u == UnitPieces || u == UnitBoxes
}

// Settings is an immutable snapshot of the order session settings. Every
// calculation takes one by value; the session layer owns mutation.
type Settings struct {
	Today         *time.Time `json:"today"`
	DeliveryDate  *time.Time `json:"delivery_date"`
	PeriodDays    int        `json:"period_days"`
	SafetyDays    int        `json:"safety_days"`
	SafetyPercent float64    `json:"safety_percent"`
	Unit          Unit       `json:"unit"`
}

// DefaultSettings returns settings with no date anchors, a 30 day period and pieces.
func DefaultSettings() Settings {
	return Settings{
		PeriodDays: DefaultPeriodDays,
		Unit:       UnitPieces,
	}
}

// OrderItem is one product line of the working order.
type OrderItem struct {
	SKU               *string          `json:"sku"`
	Name              string           `json:"name"`
	QtyPerBox         float64          `json:"qty_per_box"`      // pack size, 1 when unknown
	BoxesPerPallet    *float64         `json:"boxes_per_pallet"` // nil when not palletized
	ConsumptionPeriod float64          `json:"consumption_period"`
	Stock             float64          `json:"stock"`
	Transit           float64          `json:"transit"`
	FinalOrder        float64          `json:"final_order"` // human-approved quantity
	PricePerUnit      *decimal.Decimal `json:"price_per_unit,omitempty"`
}

// PalletsInfo is the pallet breakdown of a final order.
type PalletsInfo struct {
	Pallets   int `json:"pallets"`
	BoxesLeft int `json:"boxes_left"`
}

// OrderResult holds the values derived for one order item.
type OrderResult struct {
	CalculatedOrder float64      `json:"calculated_order"`
	CoverageDate    *time.Time   `json:"coverage_date"`
	PalletsInfo     *PalletsInfo `json:"pallets_info"`
}

// ShortageResult describes stock that runs out before the delivery arrives.
type ShortageResult struct {
	HasShortage   bool    `json:"has_shortage"`
	DeficitAmount float64 `json:"deficit_amount"`
	DeficitDays   int     `json:"deficit_days"`
	DeficitBoxes  *int    `json:"deficit_boxes"`
}

// PlanItem is one product in a multi-month plan. Plan is always rebuilt as
// a whole from the other fields.
type PlanItem struct {
	SKU                *string       `json:"sku"`
	Name               string        `json:"name"`
	QtyPerBox          float64       `json:"qty_per_box"`
	MonthlyConsumption float64       `json:"monthly_consumption"`
	StockOnHand        float64       `json:"stock_on_hand"`
	StockAtSupplier    float64       `json:"stock_at_supplier"`
	Plan               []MonthResult `json:"plan"`
}

// MonthResult is the projection for a single planned month.
type MonthResult struct {
	Month          int     `json:"month"`
	AvailableStock float64 `json:"available_stock"` // stock at the start of the month
	Need           float64 `json:"need"`
	Deficit        float64 `json:"deficit"`
	OrderBoxes     int     `json:"order_boxes"`
	OrderUnits     float64 `json:"order_units"`
}
