package domain

import (
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is a vendor the restaurants order from
type Supplier struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	LegalEntity string    `json:"legal_entity" db:"legal_entity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Product is a catalog entry of a supplier
type Product struct {
	ID             int64            `json:"id" db:"id"`
	SupplierID     int64            `json:"supplier_id" db:"supplier_id"`
	SKU            *string          `json:"sku" db:"sku"`
	Name           string           `json:"name" db:"name"`
	QtyPerBox      float64          `json:"qty_per_box" db:"qty_per_box"`
	BoxesPerPallet *float64         `json:"boxes_per_pallet" db:"boxes_per_pallet"`
	PricePerUnit   *decimal.Decimal `json:"price_per_unit" db:"price_per_unit"`
	SortOrder      int              `json:"sort_order" db:"sort_order"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

// Order is a persisted order session: the settings it was calculated with and its lines
type Order struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	SupplierID    int64           `json:"supplier_id" db:"supplier_id"`
	LegalEntity   string          `json:"legal_entity" db:"legal_entity"`
	Status        OrderStatus     `json:"status" db:"status"`
	Today         *time.Time      `json:"today" db:"today"`
	DeliveryDate  *time.Time      `json:"delivery_date" db:"delivery_date"`
	PeriodDays    int             `json:"period_days" db:"period_days"`
	SafetyDays    int             `json:"safety_days" db:"safety_days"`
	SafetyPercent float64         `json:"safety_percent" db:"safety_percent"`
	Unit          calculator.Unit `json:"unit" db:"unit"`
	Lines         []OrderLine     `json:"lines" db:"-"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// Settings returns the calculation settings the order was created with
func (o *Order) Settings() calculator.Settings {
	return calculator.Settings{
		Today:         o.Today,
		DeliveryDate:  o.DeliveryDate,
		PeriodDays:    o.PeriodDays,
		SafetyDays:    o.SafetyDays,
		SafetyPercent: o.SafetyPercent,
		Unit:          o.Unit,
	}
}

// ApplySettings copies a settings snapshot onto the order
func (o *Order) ApplySettings(s calculator.Settings) {
	o.Today = s.Today
	o.DeliveryDate = s.DeliveryDate
	o.PeriodDays = s.PeriodDays
	o.SafetyDays = s.SafetyDays
	o.SafetyPercent = s.SafetyPercent
	o.Unit = s.Unit
}

// Items returns the calculator view of every line, in line order
func (o *Order) Items() []calculator.OrderItem {
	items := make([]calculator.OrderItem, len(o.Lines))
	for i, line := range o.Lines {
		items[i] = line.Item()
	}
	return items
}

// OrderLine is one persisted product line of an order
type OrderLine struct {
	ID                int64            `json:"id" db:"id"`
	OrderID           uuid.UUID        `json:"order_id" db:"order_id"`
	ProductID         *int64           `json:"product_id" db:"product_id"`
	Position          int              `json:"position" db:"position"`
	SKU               *string          `json:"sku" db:"sku"`
	Name              string           `json:"name" db:"name"`
	QtyPerBox         float64          `json:"qty_per_box" db:"qty_per_box"`
	BoxesPerPallet    *float64         `json:"boxes_per_pallet" db:"boxes_per_pallet"`
	PricePerUnit      *decimal.Decimal `json:"price_per_unit" db:"price_per_unit"`
	ConsumptionPeriod float64          `json:"consumption_period" db:"consumption_period"`
	Stock             float64          `json:"stock" db:"stock"`
	Transit           float64          `json:"transit" db:"transit"`
	FinalOrder        float64          `json:"final_order" db:"final_order"`
	CalculatedOrder   float64          `json:"calculated_order" db:"calculated_order"`
}

// Item returns the calculator view of the line
func (l OrderLine) Item() calculator.OrderItem {
	return calculator.OrderItem{
		SKU:               l.SKU,
		Name:              l.Name,
		QtyPerBox:         l.QtyPerBox,
		BoxesPerPallet:    l.BoxesPerPallet,
		ConsumptionPeriod: l.ConsumptionPeriod,
		Stock:             l.Stock,
		Transit:           l.Transit,
		FinalOrder:        l.FinalOrder,
		PricePerUnit:      l.PricePerUnit,
	}
}

// PlanEntry holds the manually entered planning inputs of one product
type PlanEntry struct {
	ProductID          int64     `json:"product_id" db:"product_id"`
	MonthlyConsumption float64   `json:"monthly_consumption" db:"monthly_consumption"`
	StockOnHand        float64   `json:"stock_on_hand" db:"stock_on_hand"`
	StockAtSupplier    float64   `json:"stock_at_supplier" db:"stock_at_supplier"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// PlannedProduct is a catalog product together with its projected plan
type PlannedProduct struct {
	ProductID int64 `json:"product_id"`
	calculator.PlanItem
}

// SupplierPlan is the multi-month order schedule of one supplier
type SupplierPlan struct {
	SupplierID   int64            `json:"supplier_id"`
	SupplierName string           `json:"supplier_name"`
	Months       int              `json:"months"`
	Products     []PlannedProduct `json:"products"`
	Totals       []int            `json:"totals"` // boxes per month over all products
}
