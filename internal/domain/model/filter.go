package model

import (
	"strings"
	"time"
)

// SupplierFilter narrows supplier listings. Zero fields are ignored.
type SupplierFilter struct {
	Status      SupplierStatus
	City        string
	Reliability Reliability
	Specialty   string
}

// Matches reports whether s satisfies every set criterion.
func (f SupplierFilter) Matches(s Supplier) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.City != "" && !containsFold(s.City, f.City) {
		return false
	}
	if f.Reliability != "" && s.Reliability != f.Reliability {
		return false
	}
	if f.Specialty != "" {
		found := false
		for _, spec := range s.Specialties {
			if containsFold(spec, f.Specialty) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// OrderFilter narrows order listings. Zero fields are ignored; date bounds are inclusive.
type OrderFilter struct {
	Status     OrderStatus
	CustomerID *int64
	SupplierID *int64
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string
}

// Matches reports whether o satisfies every set criterion.
func (f OrderFilter) Matches(o Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.CustomerID != nil && (o.CustomerID == nil || *o.CustomerID != *f.CustomerID) {
		return false
	}
	if f.SupplierID != nil && o.Product.SupplierID != *f.SupplierID {
		return false
	}
	if f.DateFrom != nil && o.OrderDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && o.OrderDate.After(*f.DateTo) {
		return false
	}
	if f.Search != "" {
		if !containsFold(o.Product.Name, f.Search) &&
			!containsFold(o.CustomerName, f.Search) &&
			!containsFold(o.Product.SupplierName, f.Search) &&
			!containsFold(o.ID, f.Search) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
