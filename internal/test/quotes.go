package test

import (
	"context"
	"sync"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

// QuoteSourceStub answers every supplier with a single fixed quote.
type QuoteSourceStub struct {
	QuotesFn func(context.Context, string, []model.Supplier) ([]model.SupplierQuotes, error)
	Err      error

	mu        sync.Mutex
	LastQuery string
	Calls     int
}

// Quotes returns configured results or one in-stock quote per supplier.
func (s *QuoteSourceStub) Quotes(ctx context.Context, query string, suppliers []model.Supplier) ([]model.SupplierQuotes, error) {
	s.mu.Lock()
	s.LastQuery = query
	s.Calls++
	s.mu.Unlock()

	if s.QuotesFn != nil {
		return s.QuotesFn(ctx, query, suppliers)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.SupplierQuotes, 0, len(suppliers))
	for _, sup := range suppliers {
		result = append(result, model.SupplierQuotes{
			Supplier: sup,
			Products: []model.Quote{{
				Name:           query,
				EstimatedPrice: 500,
				Availability:   model.AvailabilityInStock,
				DeliveryDays:   sup.AvgDeliveryDays,
			}},
		})
	}
	return result, nil
}
