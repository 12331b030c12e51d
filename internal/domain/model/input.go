package model

import "time"

// ProductInput describes a product to be sourced from a supplier.
type ProductInput struct {
	Name           string
	Description    string
	EstimatedPrice float64
	SupplierID     int64
	Category       string
	Specifications string
	Images         []string
}

// OrderInput describes a new outsourced order.
type OrderInput struct {
	QuotationID      *int64
	SalesOrderID     *int64
	CustomerID       *int64
	CustomerName     string
	Product          Product
	Quantity         int
	AgreedPrice      float64
	ExpectedDelivery time.Time
	AdvanceAmount    float64
	SupplierOrderRef string
	TrackingInfo     string
	Notes            string
}
