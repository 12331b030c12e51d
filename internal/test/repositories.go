package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/domain/repository"
)

// SupplierRepositoryStub keeps suppliers in a slice and can be forced to fail.
type SupplierRepositoryStub struct {
	Suppliers []model.Supplier
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error

	mu sync.Mutex
}

// List returns suppliers matching filter in slice order.
func (s *SupplierRepositoryStub) List(_ context.Context, filter model.SupplierFilter) ([]model.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var result []model.Supplier
	for _, sup := range s.Suppliers {
		if filter.Matches(sup) {
			sup.Specialties = append([]string(nil), sup.Specialties...)
			result = append(result, sup)
		}
	}
	return result, nil
}

// GetByID looks supplier up or reports not found.
func (s *SupplierRepositoryStub) GetByID(_ context.Context, id int64) (*model.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	for _, sup := range s.Suppliers {
		if sup.ID == id {
			return &sup, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create appends supplier with the next free id.
func (s *SupplierRepositoryStub) Create(_ context.Context, supplier model.Supplier) (*model.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	var maxID int64
	for _, sup := range s.Suppliers {
		if sup.ID > maxID {
			maxID = sup.ID
		}
	}
	supplier.ID = maxID + 1
	s.Suppliers = append(s.Suppliers, supplier)
	return &supplier, nil
}

// Update applies fn to a copy and stores it when fn succeeds.
func (s *SupplierRepositoryStub) Update(_ context.Context, id int64, fn func(*model.Supplier) error) (*model.Supplier, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return nil, false, s.UpdateErr
	}
	for i := range s.Suppliers {
		if s.Suppliers[i].ID != id {
			continue
		}
		updated := s.Suppliers[i]
		updated.Specialties = append([]string(nil), updated.Specialties...)
		if err := fn(&updated); err != nil {
			return nil, true, err
		}
		s.Suppliers[i] = updated
		return &updated, true, nil
	}
	return nil, false, nil
}

// OrderRepositoryStub keeps orders in a slice and can be forced to fail.
type OrderRepositoryStub struct {
	Orders    []model.Order
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error

	mu sync.Mutex
}

// Create appends order unless CreateErr is set.
func (s *OrderRepositoryStub) Create(_ context.Context, order model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// GetByID looks order up or reports not found.
func (s *OrderRepositoryStub) GetByID(_ context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	for _, o := range s.Orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders matching filter in slice order.
func (s *OrderRepositoryStub) List(_ context.Context, filter model.OrderFilter) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var result []model.Order
	for _, o := range s.Orders {
		if filter.Matches(o) {
			result = append(result, o)
		}
	}
	return result, nil
}

// Update applies fn to a copy and stores it when fn succeeds.
func (s *OrderRepositoryStub) Update(_ context.Context, id string, fn func(*model.Order) error) (*model.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return nil, false, s.UpdateErr
	}
	for i := range s.Orders {
		if s.Orders[i].ID != id {
			continue
		}
		updated := s.Orders[i]
		if err := fn(&updated); err != nil {
			return nil, true, err
		}
		s.Orders[i] = updated
		return &updated, true, nil
	}
	return nil, false, nil
}

// FactoryStub hands out stub repositories and records Close.
type FactoryStub struct {
	SupplierRepo *SupplierRepositoryStub
	OrderRepo    *OrderRepositoryStub
	HealthErr    error
	Closed       bool
}

func (f *FactoryStub) Suppliers() repository.SupplierRepository {
	if f.SupplierRepo == nil {
		f.SupplierRepo = &SupplierRepositoryStub{}
	}
	return f.SupplierRepo
}

func (f *FactoryStub) Orders() repository.OrderRepository {
	if f.OrderRepo == nil {
		f.OrderRepo = &OrderRepositoryStub{}
	}
	return f.OrderRepo
}

// HealthCheck returns HealthErr.
func (f *FactoryStub) HealthCheck(context.Context) error {
	return f.HealthErr
}

// Close marks the factory as closed.
func (f *FactoryStub) Close() {
	f.Closed = true
}
