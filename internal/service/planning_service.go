package service

import (
	"context"
	"fmt"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	maxPlanMonths      = 24
	planWorkerPoolSize = 4
)

type PlanningService struct {
	plans         repository.PlanRepository
	catalog       *CatalogService
	defaultMonths int
}

func NewPlanningService(plans repository.PlanRepository, catalog *CatalogService, defaultMonths int) *PlanningService {
	if defaultMonths <= 0 || defaultMonths > maxPlanMonths {
		defaultMonths = 3
	}
	return &PlanningService{plans: plans, catalog: catalog, defaultMonths: defaultMonths}
}

// PlanSupplier projects the monthly orders of every catalog product of the
// supplier. Products without planning inputs plan with zeros.
func (s *PlanningService) PlanSupplier(ctx context.Context, supplierID int64, months int) (*domain.SupplierPlan, error) {
	months, err := s.planMonths(months)
	if err != nil {
		return nil, err
	}

	supplier, err := s.catalog.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.ListProducts(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	entries, err := s.plans.ListPlanEntries(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan entries: %w", err)
	}
	byProduct := make(map[int64]domain.PlanEntry, len(entries))
	for _, e := range entries {
		byProduct[e.ProductID] = e
	}

	plan := &domain.SupplierPlan{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Months:       months,
		Products:     make([]domain.PlannedProduct, 0, len(products)),
	}

	items := make([]calculator.PlanItem, 0, len(products))
	for _, p := range products {
		entry := byProduct[p.ID]
		item := calculator.PlanItem{
			SKU:                p.SKU,
			Name:               p.Name,
			QtyPerBox:          p.QtyPerBox,
			MonthlyConsumption: entry.MonthlyConsumption,
			StockOnHand:        entry.StockOnHand,
			StockAtSupplier:    entry.StockAtSupplier,
		}
		item.Recompute(months)

		items = append(items, item)
		plan.Products = append(plan.Products, domain.PlannedProduct{ProductID: p.ID, PlanItem: item})
	}
	plan.Totals = calculator.MonthlyTotals(items, months)

	return plan, nil
}

// PlanAll plans every supplier concurrently. Results keep supplier order.
func (s *PlanningService) PlanAll(ctx context.Context, months int) ([]*domain.SupplierPlan, error) {
	months, err := s.planMonths(months)
	if err != nil {
		return nil, err
	}

	suppliers, err := s.catalog.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	plans := make([]*domain.SupplierPlan, len(suppliers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(planWorkerPoolSize)

	for i, supplier := range suppliers {
		i, supplier := i, supplier
		g.Go(func() error {
			plan, err := s.PlanSupplier(gctx, supplier.ID, months)
			if err != nil {
				return fmt.Errorf("supplier %d: %w", supplier.ID, err)
			}
			plans[i] = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("suppliers", len(plans)).Int("months", months).Msg("planned all suppliers")
	return plans, nil
}

// SavePlanEntries stores planning inputs after checking that every product
// belongs to the supplier.
func (s *PlanningService) SavePlanEntries(ctx context.Context, supplierID int64, entries []domain.PlanEntry) error {
	products, err := s.catalog.ListProducts(ctx, supplierID)
	if err != nil {
		return err
	}
	known := make(map[int64]struct{}, len(products))
	for _, p := range products {
		known[p.ID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(entries))
	for i, e := range entries {
		if _, ok := known[e.ProductID]; !ok {
			return fmt.Errorf("entry %d: product %d is not in the supplier catalog: %w", i+1, e.ProductID, domain.ErrInvalidInput)
		}
		if _, dup := seen[e.ProductID]; dup {
			return fmt.Errorf("entry %d: product %d appears more than once: %w", i+1, e.ProductID, domain.ErrInvalidInput)
		}
		seen[e.ProductID] = struct{}{}
		if e.MonthlyConsumption < 0 || e.StockOnHand < 0 || e.StockAtSupplier < 0 {
			return fmt.Errorf("entry %d: values must not be negative: %w", i+1, domain.ErrInvalidInput)
		}
	}

	if err := s.plans.SavePlanEntries(ctx, supplierID, entries); err != nil {
		return fmt.Errorf("failed to save plan entries: %w", err)
	}

	log.Info().Int64("supplier_id", supplierID).Int("entries", len(entries)).Msg("plan entries saved")
	return nil
}

func (s *PlanningService) planMonths(months int) (int, error) {
	if months <= 0 {
		return s.defaultMonths, nil
	}
	if months > maxPlanMonths {
		return 0, fmt.Errorf("months must be at most %d: %w", maxPlanMonths, domain.ErrInvalidInput)
	}
	return months, nil
}
