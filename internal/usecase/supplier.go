package usecase

import (
	"context"
	"sort"

	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/domain/repository"
)

// SupplierUseCase manages the supplier registry.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
}

// NewSupplierUseCase constructs SupplierUseCase.
func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers}
}

// List returns suppliers matching filter, best rated first.
func (u *SupplierUseCase) List(ctx context.Context, filter model.SupplierFilter) ([]model.Supplier, error) {
	suppliers, err := u.suppliers.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(suppliers, func(i, j int) bool {
		return suppliers[i].Rating > suppliers[j].Rating
	})
	return suppliers, nil
}

// Add validates and stores a new supplier. The id is assigned by the registry.
func (u *SupplierUseCase) Add(ctx context.Context, supplier model.Supplier) (*model.Supplier, error) {
	if supplier.Status == "" {
		supplier.Status = model.SupplierStatusActive
	}
	if err := ValidateSupplier(supplier); err != nil {
		return nil, err
	}
	return u.suppliers.Create(ctx, supplier)
}

// Update merges update into the stored supplier. found is false when id is unknown.
func (u *SupplierUseCase) Update(ctx context.Context, id int64, update model.SupplierUpdate) (*model.Supplier, bool, error) {
	return u.suppliers.Update(ctx, id, func(s *model.Supplier) error {
		update.Apply(s)
		return ValidateSupplier(*s)
	})
}

// Seed adds suppliers when the registry is empty and reports how many were inserted.
func (u *SupplierUseCase) Seed(ctx context.Context, suppliers []model.Supplier) (int, error) {
	existing, err := u.suppliers.List(ctx, model.SupplierFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i, s := range suppliers {
		if _, err := u.Add(ctx, s); err != nil {
			return i, err
		}
	}
	return len(suppliers), nil
}
