package handlers

import (
	"context"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

// SupplierFacade describes registry operations exposed via HTTP.
type SupplierFacade interface {
	GetSuppliers(ctx context.Context, filter model.SupplierFilter) ([]model.Supplier, error)
	AddSupplier(ctx context.Context, supplier model.Supplier) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, update model.SupplierUpdate) (*model.Supplier, bool, error)
	GetSuitableSuppliers(ctx context.Context, name, category string) ([]model.Supplier, error)
}

// SearchFacade runs external product searches.
type SearchFacade interface {
	SearchExternalProducts(ctx context.Context, query, category string) ([]model.SupplierQuotes, error)
}

// OrderFacade encapsulates the outsourced order ledger.
type OrderFacade interface {
	CreateOutsourcedProduct(ctx context.Context, in model.ProductInput) (*model.Product, error)
	CreateOutsourcedOrder(ctx context.Context, in model.OrderInput) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, notes *string) (*model.Order, bool, error)
	UpdateOrder(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, bool, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetOutsourcedOrders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
}

// StatisticsFacade provides ledger aggregates.
type StatisticsFacade interface {
	GetOrderStatistics(ctx context.Context) (*model.OrderStatistics, error)
}

// HealthFacade checks storage availability.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// OutsourcingFacade aggregates the full set of operations used across handlers.
type OutsourcingFacade interface {
	SupplierFacade
	SearchFacade
	OrderFacade
	StatisticsFacade
	HealthFacade
}
