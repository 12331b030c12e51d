package repository

import (
	"context"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

// OrderRepository describes persistence operations with outsourced orders.
// Listings are returned in creation order.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	// Update applies fn to the stored order atomically. found is false when id is unknown.
	Update(ctx context.Context, id string, fn func(*model.Order) error) (order *model.Order, found bool, err error)
}
