package memory

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/domain/repository"
)

// Store keeps suppliers and orders in process memory. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	suppliers []model.Supplier
	orders    []model.Order
}

type supplierRepository struct {
	store *Store
}

type orderRepository struct {
	store *Store
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) Suppliers() repository.SupplierRepository {
	return &supplierRepository{store: s}
}

func (s *Store) Orders() repository.OrderRepository {
	return &orderRepository{store: s}
}

// HealthCheck always succeeds for the in-memory store.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op; state is dropped with the process.
func (s *Store) Close() {}

// --- SupplierRepository implementation ---

func (r *supplierRepository) List(_ context.Context, filter model.SupplierFilter) ([]model.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []model.Supplier
	for _, s := range r.store.suppliers {
		if filter.Matches(s) {
			result = append(result, cloneSupplier(s))
		}
	}
	return result, nil
}

func (r *supplierRepository) GetByID(_ context.Context, id int64) (*model.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.store.supplierIndex(id)
	if idx < 0 {
		return nil, domainErrors.ErrNotFound
	}
	s := cloneSupplier(r.store.suppliers[idx])
	return &s, nil
}

func (r *supplierRepository) Create(_ context.Context, supplier model.Supplier) (*model.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var maxID int64
	for _, s := range r.store.suppliers {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	supplier.ID = maxID + 1
	r.store.suppliers = append(r.store.suppliers, cloneSupplier(supplier))
	return &supplier, nil
}

func (r *supplierRepository) Update(_ context.Context, id int64, fn func(*model.Supplier) error) (*model.Supplier, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.store.supplierIndex(id)
	if idx < 0 {
		return nil, false, nil
	}
	updated := cloneSupplier(r.store.suppliers[idx])
	if err := fn(&updated); err != nil {
		return nil, true, err
	}
	updated.ID = id
	r.store.suppliers[idx] = cloneSupplier(updated)
	return &updated, true, nil
}

func (s *Store) supplierIndex(id int64) int {
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(_ context.Context, order model.Order) (*model.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.orderIndex(order.ID) >= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	r.store.orders = append(r.store.orders, cloneOrder(order))
	return &order, nil
}

func (r *orderRepository) GetByID(_ context.Context, id string) (*model.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.store.orderIndex(id)
	if idx < 0 {
		return nil, domainErrors.ErrNotFound
	}
	o := cloneOrder(r.store.orders[idx])
	return &o, nil
}

func (r *orderRepository) List(_ context.Context, filter model.OrderFilter) ([]model.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []model.Order
	for _, o := range r.store.orders {
		if filter.Matches(o) {
			result = append(result, cloneOrder(o))
		}
	}
	return result, nil
}

func (r *orderRepository) Update(_ context.Context, id string, fn func(*model.Order) error) (*model.Order, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.store.orderIndex(id)
	if idx < 0 {
		return nil, false, nil
	}
	updated := cloneOrder(r.store.orders[idx])
	if err := fn(&updated); err != nil {
		return nil, true, err
	}
	updated.ID = id
	r.store.orders[idx] = cloneOrder(updated)
	return &updated, true, nil
}

func (s *Store) orderIndex(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneSupplier(s model.Supplier) model.Supplier {
	s.Specialties = append([]string(nil), s.Specialties...)
	return s
}

func cloneOrder(o model.Order) model.Order {
	o.QuotationID = cloneInt(o.QuotationID)
	o.SalesOrderID = cloneInt(o.SalesOrderID)
	o.CustomerID = cloneInt(o.CustomerID)
	if o.ActualDelivery != nil {
		t := *o.ActualDelivery
		o.ActualDelivery = &t
	}
	o.Product.Images = append([]string(nil), o.Product.Images...)
	return o
}

func cloneInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
