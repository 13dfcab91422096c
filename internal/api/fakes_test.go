package api

import (
	"context"
	"sort"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/google/uuid"
)

type memoryCatalog struct {
	suppliers []domain.Supplier
	products  []domain.Product
}

func (m *memoryCatalog) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return m.suppliers, nil
}

func (m *memoryCatalog) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	for _, s := range m.suppliers {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memoryCatalog) ListProducts(ctx context.Context, supplierID int64) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryCatalog) GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (m *memoryCatalog) UpsertProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == 0 {
		product.ID = int64(len(m.products) + 1)
	}
	m.products = append(m.products, *product)
	return nil
}

type memoryOrders map[uuid.UUID]domain.Order

func (m memoryOrders) SaveOrder(ctx context.Context, order *domain.Order) error {
	m[order.ID] = *order
	return nil
}

func (m memoryOrders) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, ok := m[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (m memoryOrders) ListOrders(ctx context.Context, supplierID int64, limit int) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range m {
		if supplierID == 0 || o.SupplierID == supplierID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memoryOrders) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	o, ok := m[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	m[id] = o
	return nil
}

func (m memoryOrders) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, ok := m[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m, id)
	return nil
}

type memoryPlans map[int64][]domain.PlanEntry

func (m memoryPlans) ListPlanEntries(ctx context.Context, supplierID int64) ([]domain.PlanEntry, error) {
	return m[supplierID], nil
}

func (m memoryPlans) SavePlanEntries(ctx context.Context, supplierID int64, entries []domain.PlanEntry) error {
	m[supplierID] = entries
	return nil
}
