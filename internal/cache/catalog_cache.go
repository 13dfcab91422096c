package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/config"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	catalogKeyPrefix     = "catalog:products"
	catalogScanBatchSize = 100
)

// CatalogCache keeps supplier product lists. Entries are replaced whole and
// dropped whenever the catalog of the supplier changes.
type CatalogCache interface {
	GetProducts(ctx context.Context, supplierID int64) ([]domain.Product, bool, error)
	SetProducts(ctx context.Context, supplierID int64, products []domain.Product) error
	Invalidate(ctx context.Context, supplierID int64) error
	InvalidateAll(ctx context.Context) error
}

type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopCatalogCache struct{}

func NewCatalogCache(cfg config.CacheConfig) (CatalogCache, error) {
	if !cfg.Enabled {
		return &noopCatalogCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisCatalogCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopCatalogCache() CatalogCache {
	return &noopCatalogCache{}
}

func (c *redisCatalogCache) GetProducts(ctx context.Context, supplierID int64) ([]domain.Product, bool, error) {
	payload, err := c.client.Get(ctx, catalogKey(supplierID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false, fmt.Errorf("decode catalog cache: %w", err)
	}

	return products, true, nil
}

func (c *redisCatalogCache) SetProducts(ctx context.Context, supplierID int64, products []domain.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog cache: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey(supplierID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisCatalogCache) Invalidate(ctx context.Context, supplierID int64) error {
	return c.client.Del(ctx, catalogKey(supplierID)).Err()
}

func (c *redisCatalogCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, catalogKeyPrefix, catalogScanBatchSize)
}

func (n *noopCatalogCache) GetProducts(ctx context.Context, supplierID int64) ([]domain.Product, bool, error) {
	return nil, false, nil
}

func (n *noopCatalogCache) SetProducts(ctx context.Context, supplierID int64, products []domain.Product) error {
	return nil
}

func (n *noopCatalogCache) Invalidate(ctx context.Context, supplierID int64) error {
	return nil
}

func (n *noopCatalogCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func catalogKey(supplierID int64) string {
	return fmt.Sprintf("%s:%d", catalogKeyPrefix, supplierID)
}
