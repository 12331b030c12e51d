package usecase

import (
	"fmt"
	"math"
	"strings"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domainErrors.ErrInvalidInput}, args...)...)
}

// amount reports whether v is a finite, non-negative money value.
func amount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// ValidateSupplier checks a complete supplier record.
func ValidateSupplier(s model.Supplier) error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("supplier name is required")
	}
	if !s.Reliability.Valid() {
		return invalid("unknown reliability %q", s.Reliability)
	}
	if !s.Status.Valid() {
		return invalid("unknown supplier status %q", s.Status)
	}
	if !(s.Rating >= model.MinRating && s.Rating <= model.MaxRating) {
		return invalid("rating %.1f out of range [%.0f, %.0f]", s.Rating, model.MinRating, model.MaxRating)
	}
	if s.AvgDeliveryDays <= 0 {
		return invalid("average delivery days must be positive")
	}
	return nil
}

// ValidateProduct checks caller supplied product fields.
func ValidateProduct(p model.ProductInput) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("product name is required")
	}
	if !amount(p.EstimatedPrice) {
		return invalid("estimated price must not be negative")
	}
	return nil
}

// ValidateOrder checks caller supplied order fields.
func ValidateOrder(in model.OrderInput) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return invalid("customer name is required")
	}
	if strings.TrimSpace(in.Product.Name) == "" {
		return invalid("product name is required")
	}
	if in.Quantity <= 0 {
		return invalid("quantity must be positive")
	}
	if !amount(in.Product.EstimatedPrice) {
		return invalid("estimated price must not be negative")
	}
	if !amount(in.AgreedPrice) {
		return invalid("agreed price must not be negative")
	}
	if !amount(in.AdvanceAmount) {
		return invalid("advance amount must not be negative")
	}
	if in.ExpectedDelivery.IsZero() {
		return invalid("expected delivery is required")
	}
	return nil
}
