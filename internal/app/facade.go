package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/domain/repository"
	"github.com/polkiloo/outsourcing/internal/metrics"
	"github.com/polkiloo/outsourcing/internal/usecase"
)

// OutsourcingFacade is the single entry point transports call into.
type OutsourcingFacade struct {
	suppliers *usecase.SupplierUseCase
	matcher   *usecase.SupplierMatcher
	search    *usecase.SearchUseCase
	orders    *usecase.OrderUseCase
	stats     *usecase.StatisticsUseCase
	store     repository.Factory
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewOutsourcingFacade(
	suppliers *usecase.SupplierUseCase,
	matcher *usecase.SupplierMatcher,
	search *usecase.SearchUseCase,
	orders *usecase.OrderUseCase,
	stats *usecase.StatisticsUseCase,
	store repository.Factory,
	m *metrics.Metrics,
	logger *zap.Logger,
) *OutsourcingFacade {
	return &OutsourcingFacade{
		suppliers: suppliers,
		matcher:   matcher,
		search:    search,
		orders:    orders,
		stats:     stats,
		store:     store,
		metrics:   m,
		logger:    logger,
	}
}

func (f *OutsourcingFacade) SearchExternalProducts(ctx context.Context, query, category string) ([]model.SupplierQuotes, error) {
	result, err := f.search.Search(ctx, query, category)
	switch {
	case err != nil:
		f.metrics.SearchCompleted(metrics.SearchFailed)
		return nil, err
	case len(result) == 0:
		f.metrics.SearchCompleted(metrics.SearchEmpty)
	default:
		f.metrics.SearchCompleted(metrics.SearchSucceeded)
	}
	return result, nil
}

func (f *OutsourcingFacade) CreateOutsourcedProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	return f.orders.CreateProduct(ctx, in)
}

func (f *OutsourcingFacade) CreateOutsourcedOrder(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	order, err := f.orders.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	f.metrics.OrderCreated()
	f.logger.Info("outsourced order created",
		zap.String("order_id", order.ID),
		zap.Int64("supplier_id", order.Product.SupplierID),
		zap.Float64("total", order.TotalAmount))
	return order, nil
}

// UpdateOrderStatus moves an order along its lifecycle; notes are replaced only when given.
func (f *OutsourcingFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, notes *string) (*model.Order, bool, error) {
	order, found, err := f.orders.UpdateStatus(ctx, id, status, notes)
	if err != nil || !found {
		return order, found, err
	}
	f.metrics.StatusUpdated(order.Status)
	return order, true, nil
}

func (f *OutsourcingFacade) UpdateOrder(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, bool, error) {
	order, found, err := f.orders.Update(ctx, id, update)
	if err != nil || !found {
		return order, found, err
	}
	if update.Status != nil {
		f.metrics.StatusUpdated(order.Status)
	}
	return order, true, nil
}

func (f *OutsourcingFacade) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *OutsourcingFacade) GetSuppliers(ctx context.Context, filter model.SupplierFilter) ([]model.Supplier, error) {
	return f.suppliers.List(ctx, filter)
}

func (f *OutsourcingFacade) GetOutsourcedOrders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *OutsourcingFacade) GetSuitableSuppliers(ctx context.Context, name, category string) ([]model.Supplier, error) {
	return f.matcher.Match(ctx, name, category)
}

func (f *OutsourcingFacade) GetOrderStatistics(ctx context.Context) (*model.OrderStatistics, error) {
	return f.stats.Compute(ctx)
}

func (f *OutsourcingFacade) AddSupplier(ctx context.Context, supplier model.Supplier) (*model.Supplier, error) {
	created, err := f.suppliers.Add(ctx, supplier)
	if err != nil {
		return nil, err
	}
	f.metrics.SupplierAdded()
	return created, nil
}

func (f *OutsourcingFacade) UpdateSupplier(ctx context.Context, id int64, update model.SupplierUpdate) (*model.Supplier, bool, error) {
	return f.suppliers.Update(ctx, id, update)
}

// SeedSuppliers loads the default catalog into an empty registry.
func (f *OutsourcingFacade) SeedSuppliers(ctx context.Context) (int, error) {
	return f.suppliers.Seed(ctx, DefaultSuppliers())
}

// Ping reports whether the backing store is reachable.
func (f *OutsourcingFacade) Ping(ctx context.Context) error {
	return f.store.HealthCheck(ctx)
}
