package repository

import (
	"context"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

// SupplierRepository describes persistence operations for suppliers.
// Listings are returned in id order.
type SupplierRepository interface {
	List(ctx context.Context, filter model.SupplierFilter) ([]model.Supplier, error)
	GetByID(ctx context.Context, id int64) (*model.Supplier, error)
	Create(ctx context.Context, supplier model.Supplier) (*model.Supplier, error)
	// Update applies fn to the stored supplier atomically. found is false when id is unknown.
	Update(ctx context.Context, id int64, fn func(*model.Supplier) error) (supplier *model.Supplier, found bool, err error)
}
