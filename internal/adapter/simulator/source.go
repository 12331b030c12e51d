package simulator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

const (
	minPrice          = 100
	priceSpread       = 1000
	inStockThreshold  = 0.3
	extraDayThreshold = 0.5
)

// Random is the pseudo-random source quotes are drawn from.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// Source fabricates supplier quotes after an artificial network delay.
// Prices and availability are random and so not reproducible unless the
// source is seeded.
type Source struct {
	latency time.Duration

	mu  sync.Mutex
	rnd Random
}

// New creates a Source drawing from rnd.
func New(latency time.Duration, rnd Random) *Source {
	return &Source{latency: latency, rnd: rnd}
}

// NewSeeded creates a Source with a math/rand generator. A zero seed uses the current time.
func NewSeeded(latency time.Duration, seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(latency, rand.New(rand.NewSource(seed)))
}

// Quotes waits for the configured latency, then returns one quote per supplier.
func (s *Source) Quotes(ctx context.Context, query string, suppliers []model.Supplier) ([]model.SupplierQuotes, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.SupplierQuotes, 0, len(suppliers))
	for _, sup := range suppliers {
		result = append(result, model.SupplierQuotes{
			Supplier: sup,
			Products: []model.Quote{s.quote(query, sup)},
		})
	}
	return result, nil
}

func (s *Source) quote(query string, sup model.Supplier) model.Quote {
	q := model.Quote{
		Name:           query,
		Description:    query + " - Available from " + sup.Name,
		EstimatedPrice: float64(minPrice + s.rnd.Intn(priceSpread)),
		Availability:   model.AvailabilityOrderRequired,
		DeliveryDays:   sup.AvgDeliveryDays,
	}
	if s.rnd.Float64() > inStockThreshold {
		q.Availability = model.AvailabilityInStock
	}
	if s.rnd.Float64() > extraDayThreshold {
		q.DeliveryDays++
	}
	return q
}

func (s *Source) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
