package model

import "time"

// Product is an item sourced from a supplier for a specific outsourced order.
// It is immutable once created.
type Product struct {
	ID                string
	Name              string
	Description       string
	EstimatedPrice    float64
	SupplierID        int64
	SupplierName      string
	EstimatedDelivery int
	Category          string
	Specifications    string
	Images            []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
