package usecase

import (
	"context"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

// QuoteSource produces product quotes from the given suppliers.
// Implementations return one entry per supplier, preserving supplier order.
type QuoteSource interface {
	Quotes(ctx context.Context, query string, suppliers []model.Supplier) ([]model.SupplierQuotes, error)
}

// SearchUseCase looks up external products by asking matched suppliers for quotes.
type SearchUseCase struct {
	matcher *SupplierMatcher
	source  QuoteSource
}

// NewSearchUseCase constructs SearchUseCase.
func NewSearchUseCase(matcher *SupplierMatcher, source QuoteSource) *SearchUseCase {
	return &SearchUseCase{matcher: matcher, source: source}
}

// Search returns quotes for query from suppliers ranked by the matcher.
func (u *SearchUseCase) Search(ctx context.Context, query, category string) ([]model.SupplierQuotes, error) {
	suppliers, err := u.matcher.Match(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return u.source.Quotes(ctx, query, suppliers)
}
