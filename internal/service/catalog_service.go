package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresuchdata/autoorder/backend/internal/cache"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type CatalogService struct {
	repo  repository.CatalogRepository
	cache cache.CatalogCache
}

func NewCatalogService(repo repository.CatalogRepository, cacheImpl cache.CatalogCache) *CatalogService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopCatalogCache()
	}
	return &CatalogService{repo: repo, cache: cacheImpl}
}

func (s *CatalogService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.ListSuppliers(ctx)
}

func (s *CatalogService) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	return s.repo.GetSupplier(ctx, id)
}

// ListProducts returns the supplier's catalog, served from cache when possible.
func (s *CatalogService) ListProducts(ctx context.Context, supplierID int64) ([]domain.Product, error) {
	if products, ok, err := s.cache.GetProducts(ctx, supplierID); err == nil && ok {
		return products, nil
	} else if err != nil {
		log.Warn().Err(err).Int64("supplier_id", supplierID).Msg("catalog: cache get products failed")
	}

	if _, err := s.repo.GetSupplier(ctx, supplierID); err != nil {
		return nil, err
	}

	products, err := s.repo.ListProducts(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetProducts(ctx, supplierID, products); err != nil {
		log.Warn().Err(err).Int64("supplier_id", supplierID).Msg("catalog: cache set products failed")
	}

	return products, nil
}

// UpsertProduct validates and stores a product, then drops the cached catalog.
func (s *CatalogService) UpsertProduct(ctx context.Context, product *domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return fmt.Errorf("product name is required: %w", domain.ErrInvalidInput)
	}
	if product.SupplierID <= 0 {
		return fmt.Errorf("supplier_id is required: %w", domain.ErrInvalidInput)
	}
	if product.QtyPerBox <= 0 {
		product.QtyPerBox = 1
	}
	if product.BoxesPerPallet != nil && *product.BoxesPerPallet <= 0 {
		product.BoxesPerPallet = nil
	}
	if product.PricePerUnit != nil && product.PricePerUnit.IsNegative() {
		return fmt.Errorf("price_per_unit must not be negative: %w", domain.ErrInvalidInput)
	}

	// An existing product stays in the catalog it was created in
	if product.ID != 0 {
		existing, err := s.productIndex(ctx, []int64{product.ID})
		if err != nil {
			return err
		}
		if current, ok := existing[product.ID]; !ok || current.SupplierID != product.SupplierID {
			return fmt.Errorf("product %d of supplier %d: %w", product.ID, product.SupplierID, domain.ErrNotFound)
		}
	}

	if err := s.repo.UpsertProduct(ctx, product); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, product.SupplierID); err != nil {
		log.Warn().Err(err).Int64("supplier_id", product.SupplierID).Msg("catalog: cache invalidate failed")
	}
	return nil
}

// productIndex loads the given products keyed by id.
func (s *CatalogService) productIndex(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	index := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return index, nil
	}

	products, err := s.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		index[p.ID] = p
	}
	return index, nil
}
