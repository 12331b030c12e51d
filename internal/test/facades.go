package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

// OutsourcingFacadeStub provides controllable behaviour for HTTP handlers.
// Unset functions return small fixed defaults.
type OutsourcingFacadeStub struct {
	GetSuppliersFn   func(context.Context, model.SupplierFilter) ([]model.Supplier, error)
	AddSupplierFn    func(context.Context, model.Supplier) (*model.Supplier, error)
	UpdateSupplierFn func(context.Context, int64, model.SupplierUpdate) (*model.Supplier, bool, error)
	SuitableFn       func(context.Context, string, string) ([]model.Supplier, error)
	SearchFn         func(context.Context, string, string) ([]model.SupplierQuotes, error)
	CreateProductFn  func(context.Context, model.ProductInput) (*model.Product, error)
	CreateOrderFn    func(context.Context, model.OrderInput) (*model.Order, error)
	UpdateStatusFn   func(context.Context, string, model.OrderStatus, *string) (*model.Order, bool, error)
	UpdateOrderFn    func(context.Context, string, model.OrderUpdate) (*model.Order, bool, error)
	GetOrderFn       func(context.Context, string) (*model.Order, error)
	OrdersFn         func(context.Context, model.OrderFilter) ([]model.Order, error)
	StatisticsFn     func(context.Context) (*model.OrderStatistics, error)
	PingErr          error
}

// SampleSupplier is the default supplier returned by stubs.
func SampleSupplier() model.Supplier {
	return model.Supplier{
		ID:              1,
		Name:            "Quick Hardware Solutions",
		City:            "Lahore",
		Reliability:     model.ReliabilityHigh,
		AvgDeliveryDays: 3,
		Specialties:     []string{"imported hinges"},
		Status:          model.SupplierStatusActive,
		Rating:          4.8,
	}
}

// SampleOrder is the default order returned by stubs.
func SampleOrder() model.Order {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return model.Order{
		ID:           "OUT-1",
		CustomerName: "Ayesha",
		Product: model.Product{
			ID:           "OP-1",
			Name:         "brass hinge",
			SupplierID:   1,
			SupplierName: "Quick Hardware Solutions",
		},
		Quantity:         2,
		AgreedPrice:      150,
		TotalAmount:      300,
		Status:           model.OrderStatusPending,
		OrderDate:        at,
		ExpectedDelivery: at.AddDate(0, 0, 3),
		PaymentStatus:    model.PaymentStatusPending,
		CreatedAt:        at,
		UpdatedAt:        at,
	}
}

func (s OutsourcingFacadeStub) GetSuppliers(ctx context.Context, filter model.SupplierFilter) ([]model.Supplier, error) {
	if s.GetSuppliersFn != nil {
		return s.GetSuppliersFn(ctx, filter)
	}
	return []model.Supplier{SampleSupplier()}, nil
}

func (s OutsourcingFacadeStub) AddSupplier(ctx context.Context, supplier model.Supplier) (*model.Supplier, error) {
	if s.AddSupplierFn != nil {
		return s.AddSupplierFn(ctx, supplier)
	}
	supplier.ID = 1
	return &supplier, nil
}

func (s OutsourcingFacadeStub) UpdateSupplier(ctx context.Context, id int64, update model.SupplierUpdate) (*model.Supplier, bool, error) {
	if s.UpdateSupplierFn != nil {
		return s.UpdateSupplierFn(ctx, id, update)
	}
	sup := SampleSupplier()
	sup.ID = id
	update.Apply(&sup)
	return &sup, true, nil
}

func (s OutsourcingFacadeStub) GetSuitableSuppliers(ctx context.Context, name, category string) ([]model.Supplier, error) {
	if s.SuitableFn != nil {
		return s.SuitableFn(ctx, name, category)
	}
	return []model.Supplier{SampleSupplier()}, nil
}

func (s OutsourcingFacadeStub) SearchExternalProducts(ctx context.Context, query, category string) ([]model.SupplierQuotes, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query, category)
	}
	return []model.SupplierQuotes{{
		Supplier: SampleSupplier(),
		Products: []model.Quote{{Name: query, EstimatedPrice: 500, Availability: model.AvailabilityInStock, DeliveryDays: 3}},
	}}, nil
}

func (s OutsourcingFacadeStub) CreateOutsourcedProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, in)
	}
	return &model.Product{ID: "OP-1", Name: in.Name, EstimatedPrice: in.EstimatedPrice, SupplierID: in.SupplierID}, nil
}

func (s OutsourcingFacadeStub) CreateOutsourcedOrder(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, in)
	}
	order := SampleOrder()
	order.CustomerName = in.CustomerName
	order.Quantity = in.Quantity
	return &order, nil
}

func (s OutsourcingFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, notes *string) (*model.Order, bool, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, notes)
	}
	order := SampleOrder()
	order.ID = id
	order.Status = status
	return &order, true, nil
}

func (s OutsourcingFacadeStub) UpdateOrder(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, bool, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, update)
	}
	order := SampleOrder()
	order.ID = id
	return &order, true, nil
}

func (s OutsourcingFacadeStub) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	if s.GetOrderFn != nil {
		return s.GetOrderFn(ctx, id)
	}
	order := SampleOrder()
	order.ID = id
	return &order, nil
}

func (s OutsourcingFacadeStub) GetOutsourcedOrders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{SampleOrder()}, nil
}

func (s OutsourcingFacadeStub) GetOrderStatistics(ctx context.Context) (*model.OrderStatistics, error) {
	if s.StatisticsFn != nil {
		return s.StatisticsFn(ctx)
	}
	return &model.OrderStatistics{TotalOrders: 1, PendingOrders: 1, TotalValue: 300}, nil
}

func (s OutsourcingFacadeStub) Ping(context.Context) error {
	return s.PingErr
}

// StatisticsFacadeStub feeds the stats publisher.
type StatisticsFacadeStub struct {
	Stats model.OrderStatistics
	Err   error
	calls int32
}

// GetOrderStatistics returns configured statistics and counts invocations.
func (s *StatisticsFacadeStub) GetOrderStatistics(context.Context) (*model.OrderStatistics, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.Err != nil {
		return nil, s.Err
	}
	stats := s.Stats
	return &stats, nil
}

// CallCount reports how many times statistics were requested.
func (s *StatisticsFacadeStub) CallCount() int {
	return int(atomic.LoadInt32(&s.calls))
}

// StatisticsSinkStub records published statistics.
type StatisticsSinkStub struct {
	mu        sync.Mutex
	published []model.OrderStatistics
}

// PublishStatistics stores stats.
func (s *StatisticsSinkStub) PublishStatistics(stats model.OrderStatistics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, stats)
}

// Snapshot returns a copy of everything published so far.
func (s *StatisticsSinkStub) Snapshot() []model.OrderStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderStatistics(nil), s.published...)
}

// SeederStub records seeding requests.
type SeederStub struct {
	Inserted int
	Err      error
	Calls    int32
}

// SeedSuppliers returns the configured result.
func (s *SeederStub) SeedSuppliers(context.Context) (int, error) {
	atomic.AddInt32(&s.Calls, 1)
	return s.Inserted, s.Err
}
