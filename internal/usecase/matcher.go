package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/domain/repository"
)

// SupplierMatcher finds active suppliers able to provide a product.
type SupplierMatcher struct {
	suppliers repository.SupplierRepository
}

// NewSupplierMatcher constructs SupplierMatcher.
func NewSupplierMatcher(suppliers repository.SupplierRepository) *SupplierMatcher {
	return &SupplierMatcher{suppliers: suppliers}
}

// Match returns active suppliers whose specialties overlap query or category,
// highest score first. An empty result is not an error.
func (m *SupplierMatcher) Match(ctx context.Context, query, category string) ([]model.Supplier, error) {
	active, err := m.suppliers.List(ctx, model.SupplierFilter{Status: model.SupplierStatusActive})
	if err != nil {
		return nil, err
	}
	return RankSuppliers(active, query, category), nil
}

// RankSuppliers filters suppliers by specialty overlap and orders them by score.
// Ties keep input order.
func RankSuppliers(suppliers []model.Supplier, query, category string) []model.Supplier {
	query = strings.ToLower(query)
	category = strings.ToLower(category)

	matched := make([]model.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if s.Status != model.SupplierStatusActive {
			continue
		}
		if specialtiesOverlap(s.Specialties, query, category) {
			matched = append(matched, s)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score() > matched[j].Score()
	})
	return matched
}

func specialtiesOverlap(tags []string, query, category string) bool {
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		if strings.Contains(tag, query) || strings.Contains(query, tag) {
			return true
		}
		if category != "" && strings.Contains(tag, category) {
			return true
		}
	}
	return false
}
