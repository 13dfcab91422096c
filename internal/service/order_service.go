package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/repository"
	"github.com/andresuchdata/autoorder/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type OrderService struct {
	orders   repository.OrderRepository
	catalog  *CatalogService
	storage  storage.ObjectStorage
	defaults calculator.Settings
	now      func() time.Time
}

func NewOrderService(orders repository.OrderRepository, catalog *CatalogService, store storage.ObjectStorage, defaults calculator.Settings) *OrderService {
	if store == nil {
		store = storage.NoopStorage{}
	}
	return &OrderService{
		orders:   orders,
		catalog:  catalog,
		storage:  store,
		defaults: defaults,
		now:      time.Now,
	}
}

// CreateOrderRequest carries a new order session to persist
type CreateOrderRequest struct {
	SupplierID  int64               `json:"supplier_id"`
	LegalEntity string              `json:"legal_entity"`
	Settings    calculator.Settings `json:"settings"`
	Lines       []domain.OrderLine  `json:"lines"`
}

// OrderDetail is a stored order with its freshly recomputed calculation
type OrderDetail struct {
	Order   *domain.Order           `json:"order"`
	Summary calculator.OrderSummary `json:"summary"`
}

// ExportResult is a rendered order export
type ExportResult struct {
	Key      string `json:"key"`
	Data     []byte `json:"-"`
	Uploaded bool   `json:"uploaded"`
}

// Calculate runs the calculator over unsaved items. Nothing is stored.
func (s *OrderService) Calculate(ctx context.Context, settings calculator.Settings, items []calculator.OrderItem) (calculator.OrderSummary, error) {
	settings, err := normalizeSettings(settings, s.defaults)
	if err != nil {
		return calculator.OrderSummary{}, err
	}
	items, err = normalizeItems(items)
	if err != nil {
		return calculator.OrderSummary{}, err
	}

	return calculator.Summarize(items, settings), nil
}

// Shortages evaluates the shortage warning of every item.
func (s *OrderService) Shortages(ctx context.Context, settings calculator.Settings, items []calculator.OrderItem) ([]calculator.ShortageResult, error) {
	settings, err := normalizeSettings(settings, s.defaults)
	if err != nil {
		return nil, err
	}
	items, err = normalizeItems(items)
	if err != nil {
		return nil, err
	}

	results := make([]calculator.ShortageResult, len(items))
	for i, item := range items {
		results[i] = calculator.DetectShortage(item, settings)
	}
	return results, nil
}

// CreateOrder validates, calculates and stores a new draft order.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error) {
	if req.SupplierID <= 0 {
		return nil, fmt.Errorf("supplier_id is required: %w", domain.ErrInvalidInput)
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("order has no lines: %w", domain.ErrInvalidInput)
	}

	supplier, err := s.catalog.GetSupplier(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	settings, err := normalizeSettings(req.Settings, s.defaults)
	if err != nil {
		return nil, err
	}

	lines, err := s.completeLines(ctx, req.SupplierID, req.Lines)
	if err != nil {
		return nil, err
	}

	legalEntity := strings.TrimSpace(req.LegalEntity)
	if legalEntity == "" {
		legalEntity = supplier.LegalEntity
	}

	order := &domain.Order{
		ID:          uuid.New(),
		SupplierID:  req.SupplierID,
		LegalEntity: legalEntity,
		Status:      domain.OrderStatusDraft,
		Lines:       lines,
		CreatedAt:   s.now(),
	}
	order.ApplySettings(settings)

	return s.save(ctx, order)
}

// GetOrder loads an order and recomputes its calculation from the stored inputs.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetail, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		Order:   order,
		Summary: calculator.Summarize(order.Items(), order.Settings()),
	}, nil
}

func (s *OrderService) ListOrders(ctx context.Context, supplierID int64, limit int) ([]domain.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.orders.ListOrders(ctx, supplierID, limit)
}

// UpdateStatus moves an order forward in its lifecycle.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if !order.Status.CanTransition(status) {
		return fmt.Errorf("order %s cannot move from %s to %s: %w", id, order.Status, status, domain.ErrInvalidInput)
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	log.Info().Str("order_id", id.String()).Str("from", string(order.Status)).Str("to", string(status)).Msg("order status updated")
	return nil
}

// ReplayOrder starts a new draft from the lines and final quantities of a
// previous order. The source settings are reused unless new ones are given.
func (s *OrderService) ReplayOrder(ctx context.Context, id uuid.UUID, settings *calculator.Settings) (*OrderDetail, error) {
	source, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	next := source.Settings()
	if settings != nil {
		next = *settings
	}
	next, err = normalizeSettings(next, s.defaults)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, len(source.Lines))
	for i, line := range source.Lines {
		line.ID = 0
		line.CalculatedOrder = 0
		lines[i] = line
	}

	order := &domain.Order{
		ID:          uuid.New(),
		SupplierID:  source.SupplierID,
		LegalEntity: source.LegalEntity,
		Status:      domain.OrderStatusDraft,
		Lines:       lines,
		CreatedAt:   s.now(),
	}
	order.ApplySettings(next)

	return s.save(ctx, order)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return s.orders.DeleteOrder(ctx, id)
}

// ExportOrder renders the order as CSV and uploads it. A failed upload is
// logged and the rendered file is still returned.
func (s *OrderService) ExportOrder(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	detail, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := renderOrderCSV(detail.Order, detail.Summary)
	if err != nil {
		return nil, fmt.Errorf("failed to render order %s: %w", id, err)
	}

	result := &ExportResult{Key: exportKey(detail.Order), Data: data}
	if err := s.storage.UploadObject(ctx, result.Key, data, "text/csv; charset=utf-8"); err != nil {
		log.Error().Err(err).Str("order_id", id.String()).Str("key", result.Key).Msg("failed to upload order export")
		return result, nil
	}
	result.Uploaded = true

	return result, nil
}

// save recomputes every line, stores the order and returns it with its summary.
func (s *OrderService) save(ctx context.Context, order *domain.Order) (*OrderDetail, error) {
	settings := order.Settings()
	for i := range order.Lines {
		item, err := normalizeItem(i, order.Lines[i].Item())
		if err != nil {
			return nil, err
		}
		order.Lines[i].QtyPerBox = item.QtyPerBox
		order.Lines[i].BoxesPerPallet = item.BoxesPerPallet
		order.Lines[i].CalculatedOrder = calculator.CalculateOrder(item, settings).CalculatedOrder
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Info().
		Str("order_id", order.ID.String()).
		Int64("supplier_id", order.SupplierID).
		Int("lines", len(order.Lines)).
		Msg("order saved")

	return &OrderDetail{
		Order:   order,
		Summary: calculator.Summarize(order.Items(), settings),
	}, nil
}

// completeLines fills identity and pack data of catalog lines from the
// supplier's products. Values given on the line win.
func (s *OrderService) completeLines(ctx context.Context, supplierID int64, lines []domain.OrderLine) ([]domain.OrderLine, error) {
	var ids []int64
	for _, line := range lines {
		if line.ProductID != nil {
			ids = append(ids, *line.ProductID)
		}
	}

	products, err := s.catalog.productIndex(ctx, ids)
	if err != nil {
		return nil, err
	}

	completed := make([]domain.OrderLine, len(lines))
	for i, line := range lines {
		if line.ProductID != nil {
			product, ok := products[*line.ProductID]
			if !ok || product.SupplierID != supplierID {
				return nil, fmt.Errorf("line %d: product %d is not in the supplier catalog: %w", i+1, *line.ProductID, domain.ErrInvalidInput)
			}
			if line.SKU == nil {
				line.SKU = product.SKU
			}
			if strings.TrimSpace(line.Name) == "" {
				line.Name = product.Name
			}
			if line.QtyPerBox <= 0 {
				line.QtyPerBox = product.QtyPerBox
			}
			if line.BoxesPerPallet == nil {
				line.BoxesPerPallet = product.BoxesPerPallet
			}
			if line.PricePerUnit == nil {
				line.PricePerUnit = product.PricePerUnit
			}
		}
		line.Name = strings.TrimSpace(line.Name)
		if line.Name == "" {
			return nil, fmt.Errorf("line %d: name is required: %w", i+1, domain.ErrInvalidInput)
		}
		completed[i] = line
	}
	return completed, nil
}

func exportKey(order *domain.Order) string {
	day := order.CreatedAt
	if order.Today != nil {
		day = *order.Today
	}
	return fmt.Sprintf("orders/%d/%s_%s.csv", order.SupplierID, day.Format("2006-01-02"), order.ID)
}
