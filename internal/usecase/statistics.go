package usecase

import (
	"context"
	"math"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/domain/repository"
)

// StatisticsUseCase aggregates the whole order ledger.
type StatisticsUseCase struct {
	orders repository.OrderRepository
}

// NewStatisticsUseCase constructs StatisticsUseCase.
func NewStatisticsUseCase(orders repository.OrderRepository) *StatisticsUseCase {
	return &StatisticsUseCase{orders: orders}
}

// Compute returns statistics over every order in the ledger.
func (u *StatisticsUseCase) Compute(ctx context.Context) (*model.OrderStatistics, error) {
	orders, err := u.orders.List(ctx, model.OrderFilter{})
	if err != nil {
		return nil, err
	}
	stats := Aggregate(orders)
	return &stats, nil
}

const day = 24.0

// Aggregate computes ledger statistics. Average delivery time is the rounded
// mean of whole days, rounded up, between order date and actual delivery of
// delivered orders; it is 0 when no delivered order has an actual delivery date.
// Non-finite totals are left out of the total value.
func Aggregate(orders []model.Order) model.OrderStatistics {
	var (
		stats      model.OrderStatistics
		total      = decimal.Zero
		daysSum    float64
		deliveries int
	)

	stats.TotalOrders = len(orders)
	for _, o := range orders {
		if !math.IsInf(o.TotalAmount, 0) && !math.IsNaN(o.TotalAmount) {
			total = total.Add(decimal.NewFromFloat(o.TotalAmount))
		}

		if o.Status.Open() {
			stats.PendingOrders++
		}
		if o.Status != model.OrderStatusDelivered {
			continue
		}
		stats.CompletedOrders++
		if o.ActualDelivery != nil {
			daysSum += math.Ceil(o.ActualDelivery.Sub(o.OrderDate).Hours() / day)
			deliveries++
		}
	}

	stats.TotalValue = total.InexactFloat64()
	if deliveries > 0 {
		stats.AvgDeliveryTime = int(math.Round(daysSum / float64(deliveries)))
	}
	return stats
}
