package repository

import (
	"context"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/google/uuid"
)

type CatalogRepository interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error)
	ListProducts(ctx context.Context, supplierID int64) ([]domain.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	UpsertProduct(ctx context.Context, product *domain.Product) error
}

type OrderRepository interface {
	// SaveOrder writes the order and replaces all of its lines atomically
	SaveOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// ListOrders returns orders without lines, newest first. supplierID 0 lists all suppliers.
	ListOrders(ctx context.Context, supplierID int64, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type PlanRepository interface {
	ListPlanEntries(ctx context.Context, supplierID int64) ([]domain.PlanEntry, error)
	// SavePlanEntries replaces the planning inputs of the supplier's products
	SavePlanEntries(ctx context.Context, supplierID int64, entries []domain.PlanEntry) error
}
