package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ptr[T any](v T) *T {
	return &v
}

type fakeCatalogRepo struct {
	mu        sync.Mutex
	suppliers map[int64]domain.Supplier
	products  map[int64]domain.Product
	listCalls int
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		suppliers: map[int64]domain.Supplier{
			1: {ID: 1, Name: "Молочный двор", LegalEntity: "ООО Ромашка"},
			2: {ID: 2, Name: "Овощебаза", LegalEntity: "ООО Ромашка"},
		},
		products: map[int64]domain.Product{
			10: {ID: 10, SupplierID: 1, SKU: ptr("MLK-1"), Name: "Молоко 3,2%", QtyPerBox: 12, BoxesPerPallet: ptr(40.0), SortOrder: 1},
			11: {ID: 11, SupplierID: 1, SKU: ptr("CRM-1"), Name: "Сливки 33%", QtyPerBox: 6, SortOrder: 2},
			20: {ID: 20, SupplierID: 2, Name: "Картофель", QtyPerBox: 10, SortOrder: 1},
		},
	}
}

func (r *fakeCatalogRepo) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCatalogRepo) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *fakeCatalogRepo) ListProducts(ctx context.Context, supplierID int64) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	var out []domain.Product
	for _, p := range r.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeCatalogRepo) GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) UpsertProduct(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == 0 {
		product.ID = int64(len(r.products) + 100)
	}
	r.products[product.ID] = *product
	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]domain.Order{}}
}

func (r *fakeOrderRepo) SaveOrder(ctx context.Context, order *domain.Order) error {
	stored := *order
	stored.Lines = append([]domain.OrderLine(nil), order.Lines...)
	r.orders[order.ID] = stored
	return nil
}

func (r *fakeOrderRepo) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Lines = append([]domain.OrderLine(nil), o.Lines...)
	return &o, nil
}

func (r *fakeOrderRepo) ListOrders(ctx context.Context, supplierID int64, limit int) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if supplierID == 0 || o.SupplierID == supplierID {
			o.Lines = nil
			out = append(out, o)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	r.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

type fakePlanRepo struct {
	mu      sync.Mutex
	entries map[int64][]domain.PlanEntry
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{entries: map[int64][]domain.PlanEntry{}}
}

func (r *fakePlanRepo) ListPlanEntries(ctx context.Context, supplierID int64) ([]domain.PlanEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[supplierID], nil
}

func (r *fakePlanRepo) SavePlanEntries(ctx context.Context, supplierID int64, entries []domain.PlanEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[supplierID] = entries
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
	err     error
}

func (s *fakeStorage) UploadObject(ctx context.Context, key string, data []byte, contentType string) error {
	if s.err != nil {
		return s.err
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[key] = data
	return nil
}

var errUploadFailed = errors.New("bucket unavailable")
